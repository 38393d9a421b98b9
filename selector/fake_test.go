package selector

import (
	"errors"

	"github.com/anisan-cli/dvs/affordance"
	"github.com/anisan-cli/dvs/source"
)

type fakeEngine struct {
	sources  []source.Descriptor
	loads    [][]source.Descriptor
	time     float64
	paused   bool
	preload  Preload
	started  bool
	plays    int
	seeks    []float64
	pending  []func()
	failLoad bool
}

func newEngine(sources ...source.Descriptor) *fakeEngine {
	return &fakeEngine{sources: sources, paused: true, preload: PreloadAuto}
}

func (e *fakeEngine) Sources() []source.Descriptor { return e.sources }

func (e *fakeEngine) SetSource(sources []source.Descriptor) error {
	e.loads = append(e.loads, sources)
	if e.failLoad {
		return errors.New("load failed")
	}
	return nil
}

func (e *fakeEngine) CurrentTime() (float64, error) { return e.time, nil }

func (e *fakeEngine) SetCurrentTime(seconds float64) error {
	e.seeks = append(e.seeks, seconds)
	e.time = seconds
	return nil
}

func (e *fakeEngine) Paused() (bool, error) { return e.paused, nil }

func (e *fakeEngine) Play() error {
	e.plays++
	e.paused = false
	return nil
}

func (e *fakeEngine) Preload() Preload     { return e.preload }
func (e *fakeEngine) SetPreload(p Preload) { e.preload = p }
func (e *fakeEngine) MarkStarted()         { e.started = true }

func (e *fakeEngine) OnceMetadataLoaded(fn func()) {
	e.pending = append(e.pending, fn)
}

// loaded delivers a metadata-loaded signal.
func (e *fakeEngine) loaded() {
	pending := e.pending
	e.pending = nil
	for _, fn := range pending {
		fn()
	}
}

type fakeWidget struct {
	label    string
	selected bool
	classes  map[string]bool
}

func (w *fakeWidget) SetLabel(label string)     { w.label = label }
func (w *fakeWidget) SetSelected(selected bool) { w.selected = selected }
func (w *fakeWidget) AddClass(class string)     { w.classes[class] = true }
func (w *fakeWidget) RemoveClass(class string)  { delete(w.classes, class) }

type fakeBar struct {
	widgets map[affordance.Kind][]*fakeWidget
	added   []affordance.Affordance
}

func newBar() *fakeBar {
	return &fakeBar{widgets: make(map[affordance.Kind][]*fakeWidget)}
}

func (b *fakeBar) NewWidget(kind affordance.Kind) affordance.Widget {
	w := &fakeWidget{classes: make(map[string]bool)}
	b.widgets[kind] = append(b.widgets[kind], w)
	return w
}

func (b *fakeBar) Add(a affordance.Affordance) {
	b.added = append(b.added, a)
}

func mp4(url string, k source.Key) source.Descriptor {
	return source.Descriptor{URL: url, Type: "video/mp4", Key: k}
}

func webm(url string, k source.Key) source.Descriptor {
	return source.Descriptor{URL: url, Type: "video/webm", Key: k}
}
