package player

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anisan-cli/dvs/log"
	"github.com/anisan-cli/dvs/where"
	"github.com/google/uuid"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// MPV implements Backend over mpv's JSON-IPC socket.
type MPV struct {
	binary     string
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	listener   *EventListener
	mu         sync.Mutex // serializes IPC round trips
}

// NewMPV creates a backend for the given mpv executable. Nothing is started.
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}
	return &MPV{
		binary:     binary,
		socketPath: where.Socket("dvs-" + uuid.NewString()[:8]),
		exited:     make(chan struct{}),
	}
}

// Binary returns the executable the backend launches.
func (m *MPV) Binary() string {
	return m.binary
}

// Open starts mpv idle-capable on url and waits for its IPC socket.
func (m *MPV) Open(rawURL, title string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.Running() {
		return m.Load(target)
	}

	safeTitle := sanitizeTitle(title)
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=yes",
		"--pause=yes",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--force-media-title=%s", safeTitle),
		fmt.Sprintf("--title=%s", safeTitle),
		target,
	}

	m.cmd = exec.Command(m.binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout, m.cmd.Stderr, m.cmd.Stdin = nil, nil, nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	log.Infof("mpv started on socket %s", m.socketPath)
	return nil
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		if conn, err := net.Dial("unix", m.socketPath); err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// Load replaces the current file.
func (m *MPV) Load(rawURL string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	_, err = m.call("loadfile", target, "replace")
	return err
}

// TimePos returns the playback position in seconds.
func (m *MPV) TimePos() (float64, error) {
	return m.floatProperty("time-pos")
}

// Duration returns the length of the current file in seconds.
func (m *MPV) Duration() (float64, error) {
	return m.floatProperty("duration")
}

// Paused reports mpv's pause property.
func (m *MPV) Paused() (bool, error) {
	data, err := m.call("get_property", "pause")
	if err != nil {
		return false, err
	}
	paused, ok := data.(bool)
	if !ok {
		return false, fmt.Errorf("property pause: expected bool, got %T", data)
	}
	return paused, nil
}

// SetPaused sets mpv's pause property.
func (m *MPV) SetPaused(paused bool) error {
	_, err := m.call("set_property", "pause", paused)
	return err
}

// Seek moves to an absolute position in seconds.
func (m *MPV) Seek(seconds float64) error {
	_, err := m.call("seek", seconds, "absolute")
	return err
}

// Listen starts a dedicated event connection.
func (m *MPV) Listen(fn func(name string)) error {
	if m.listener != nil {
		m.listener.Stop()
	}
	m.listener = NewEventListener(m.socketPath, fn)
	return m.listener.Start()
}

// Running reports whether the mpv process is alive and answering.
func (m *MPV) Running() bool {
	if m.cmd == nil {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.call("get_property", "pid")
	return err == nil
}

// Wait returns a channel closed when mpv exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Close quits mpv, killing it when it does not exit in time, and removes the socket.
func (m *MPV) Close() error {
	if m.listener != nil {
		m.listener.Stop()
		m.listener = nil
	}

	if m.cmd == nil {
		return nil
	}

	_, _ = m.call("quit")

	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func (m *MPV) floatProperty(name string) (float64, error) {
	data, err := m.call("get_property", name)
	if err != nil {
		return 0, err
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}
	return val, nil
}

// sanitizeMediaTarget rejects values mpv could read as flags or control input.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
