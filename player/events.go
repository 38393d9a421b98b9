package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/anisan-cli/dvs/log"
)

// EventListener reads mpv's unsolicited events from a dedicated connection.
type EventListener struct {
	socketPath string
	callback   func(name string)

	mu   sync.Mutex
	conn net.Conn
	done chan struct{}
}

// NewEventListener creates a listener for socketPath.
func NewEventListener(socketPath string, callback func(name string)) *EventListener {
	return &EventListener{socketPath: socketPath, callback: callback}
}

// Start connects and reads events in the background until Stop or disconnect.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.conn != nil {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}
	el.conn = conn
	el.done = make(chan struct{})

	go el.readLoop(conn, el.done)

	log.Infof("mpv event listener started on %s", el.socketPath)
	return nil
}

// Stop closes the connection, which ends the read loop.
func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.conn == nil {
		return
	}
	_ = el.conn.Close()
	<-el.done
	el.conn = nil
}

func (el *EventListener) readLoop(conn net.Conn, done chan struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var msg ipcMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil || msg.Event == "" {
			continue
		}
		el.callback(msg.Event)
	}

	if err := scanner.Err(); err != nil {
		log.Debugf("event listener stopped: %v", err)
	}
}
