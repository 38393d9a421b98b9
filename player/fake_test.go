package player

import "errors"

type fakeBackend struct {
	opened   []string
	loaded   []string
	running  bool
	pos      float64
	duration float64
	paused   bool
	seeks    []float64
	listen   func(name string)
	closed   bool
	failOpen bool
	exited   chan struct{}
}

func newBackend() *fakeBackend {
	return &fakeBackend{paused: true, duration: 600, exited: make(chan struct{})}
}

func (b *fakeBackend) Open(url, _ string) error {
	if b.failOpen {
		return errors.New("mpv not found")
	}
	b.opened = append(b.opened, url)
	b.running = true
	return nil
}

func (b *fakeBackend) Load(url string) error {
	b.loaded = append(b.loaded, url)
	return nil
}

func (b *fakeBackend) TimePos() (float64, error)  { return b.pos, nil }
func (b *fakeBackend) Duration() (float64, error) { return b.duration, nil }
func (b *fakeBackend) Paused() (bool, error)      { return b.paused, nil }

func (b *fakeBackend) SetPaused(paused bool) error {
	b.paused = paused
	return nil
}

func (b *fakeBackend) Seek(seconds float64) error {
	b.seeks = append(b.seeks, seconds)
	b.pos = seconds
	return nil
}

func (b *fakeBackend) Listen(fn func(name string)) error {
	b.listen = fn
	return nil
}

func (b *fakeBackend) Running() bool { return b.running }

func (b *fakeBackend) Close() error {
	b.closed = true
	b.running = false
	return nil
}

func (b *fakeBackend) Wait() <-chan struct{} { return b.exited }
