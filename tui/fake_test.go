package tui

type fakeBackend struct {
	running bool
	loaded  []string
	pos     float64
	paused  bool
	seeks   []float64
	exited  chan struct{}
}

func newBackend() *fakeBackend {
	return &fakeBackend{paused: true, exited: make(chan struct{})}
}

func (b *fakeBackend) Open(string, string) error {
	b.running = true
	return nil
}

func (b *fakeBackend) Load(url string) error {
	b.loaded = append(b.loaded, url)
	return nil
}

func (b *fakeBackend) TimePos() (float64, error)  { return b.pos, nil }
func (b *fakeBackend) Duration() (float64, error) { return 596, nil }
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

func (b *fakeBackend) Listen(func(string)) error { return nil }
func (b *fakeBackend) Running() bool             { return b.running }
func (b *fakeBackend) Close() error              { return nil }
func (b *fakeBackend) Wait() <-chan struct{}     { return b.exited }
