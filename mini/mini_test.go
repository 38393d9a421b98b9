package mini

import (
	"errors"
	"sync"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/dvs/manifest"
	"github.com/anisan-cli/dvs/player"
	"github.com/anisan-cli/dvs/selector"
	"github.com/anisan-cli/dvs/source"
	. "github.com/smartystreets/goconvey/convey"
)

type seek struct {
	file    string
	seconds float64
}

type fakeBackend struct {
	mu      sync.Mutex
	running bool
	file    string
	loaded  []string
	pos     float64
	paused  bool
	seeks   []seek
	listen  func(string)
	exited  chan struct{}
}

func (b *fakeBackend) Open(url, _ string) error {
	b.running = true
	b.file = url
	return nil
}

// Load finishes in the background and then reports file-loaded, as mpv does.
func (b *fakeBackend) Load(url string) error {
	b.loaded = append(b.loaded, url)
	go func() {
		b.mu.Lock()
		b.file, b.pos = url, 0
		b.mu.Unlock()
		b.listen(string(player.SignalFileLoaded))
	}()
	return nil
}

func (b *fakeBackend) TimePos() (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pos, nil
}

func (b *fakeBackend) Duration() (float64, error) { return 596, nil }
func (b *fakeBackend) Paused() (bool, error)      { return b.paused, nil }

func (b *fakeBackend) SetPaused(paused bool) error {
	b.paused = paused
	return nil
}

func (b *fakeBackend) Seek(seconds float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seeks = append(b.seeks, seek{file: b.file, seconds: seconds})
	b.pos = seconds
	return nil
}

func (b *fakeBackend) Listen(fn func(string)) error {
	b.listen = fn
	return nil
}

func (b *fakeBackend) Running() bool         { return b.running }
func (b *fakeBackend) Close() error          { return nil }
func (b *fakeBackend) Wait() <-chan struct{} { return b.exited }

// script answers select prompts with the given indexes in order.
func script(answers ...int) (prompts *[]string) {
	var seen []string
	ask = func(p survey.Prompt, response any) error {
		if len(answers) == 0 {
			return errors.New("no more answers")
		}
		seen = append(seen, p.(*survey.Select).Options...)
		*response.(*int) = answers[0]
		answers = answers[1:]
		return nil
	}
	return &seen
}

var (
	base     = source.Descriptor{URL: "bbb.mp4", Key: source.Base}
	descr    = source.Descriptor{URL: "bbb-ad.mp4", Key: source.Described}
	expanded = source.Descriptor{URL: "bbb-ext.mp4", Key: "Expanded"}
)

func setup(sources ...source.Descriptor) (*mini, *fakeBackend) {
	backend := &fakeBackend{paused: true, exited: make(chan struct{})}
	engine := player.NewEngine(backend, "Big Buck Bunny", sources, selector.PreloadAuto)

	m := newMini(&Options{
		Manifest: &manifest.Manifest{Title: "Big Buck Bunny", Sources: sources},
		Engine:   engine,
	})
	_ = engine.Start()
	return m, backend
}

func TestMiniToggle(t *testing.T) {
	Convey("Given two variants", t, func() {
		m, backend := setup(base, descr)
		backend.pos = 40

		Convey("Choosing the selector should switch and restore the position", func() {
			prompts := script(3, 4)
			So(m.loop(), ShouldBeNil)

			So(*prompts, ShouldContain, "Described Video, Not Described")
			So(m.controller.Current(), ShouldEqual, source.Described)
			So(backend.loaded, ShouldResemble, []string{"bbb-ad.mp4"})
			So(backend.seeks, ShouldResemble, []seek{{file: "bbb-ad.mp4", seconds: 40}})
			So(m.selectorLabel(), ShouldEqual, "Described Video, Described")
		})

		Convey("A startup file-loaded still queued should not restore the switched source", func() {
			script(3, 4)
			answer := ask
			ask = func(p survey.Prompt, response any) error {
				ask = answer
				backend.listen(string(player.SignalFileLoaded))
				return answer(p, response)
			}
			So(m.loop(), ShouldBeNil)

			So(backend.seeks, ShouldResemble, []seek{{file: "bbb-ad.mp4", seconds: 40}})
			pos, _ := backend.TimePos()
			So(pos, ShouldEqual, 40)
		})

		Convey("Play should start playback", func() {
			script(0, 4)
			So(m.loop(), ShouldBeNil)
			So(backend.paused, ShouldBeFalse)
			So(m.engine.Started(), ShouldBeTrue)
		})

		Convey("Prompt errors should end the loop", func() {
			script()
			So(m.loop(), ShouldNotBeNil)
		})
	})
}

func TestMiniMenu(t *testing.T) {
	Convey("Given three variants", t, func() {
		m, backend := setup(base, descr, expanded)

		Convey("The selector should open the menu and switch to the chosen entry", func() {
			prompts := script(3, 2, 4)
			So(m.loop(), ShouldBeNil)

			So(*prompts, ShouldContain, "Described Video: Off")
			So(*prompts, ShouldContain, "Expanded")
			So(m.controller.Current(), ShouldEqual, source.Key("Expanded"))
			So(backend.loaded, ShouldResemble, []string{"bbb-ext.mp4"})
		})

		Convey("Back should leave the variant unchanged", func() {
			script(3, 3, 4)
			So(m.loop(), ShouldBeNil)
			So(m.controller.Current(), ShouldEqual, source.Base)
			So(backend.loaded, ShouldBeEmpty)
		})
	})
}

func TestMiniWithoutSelector(t *testing.T) {
	Convey("Given a single variant the selector should not be offered", t, func() {
		m, _ := setup(base)
		prompts := script(3)
		So(m.loop(), ShouldBeNil)
		So(*prompts, ShouldResemble, []string{"Play / Pause", "Back 10s", "Forward 10s", "Quit"})
	})
}

func TestMiniPlayerExit(t *testing.T) {
	Convey("The loop should end when the player exits", t, func() {
		m, backend := setup(base, descr)
		close(backend.exited)
		script()
		So(m.loop(), ShouldBeNil)
	})
}
