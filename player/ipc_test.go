package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeMPV answers every request on a unix socket. Each reply is preceded by
// an unrelated event and a reply to a different request.
func fakeMPV(t *testing.T, reply func(command []any) (any, string)) (string, func()) {
	dir, err := os.MkdirTemp("", "dvs")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "mpv.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal(err)
	}

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go serve(conn, reply)
		}
	}()

	return path, func() {
		_ = ln.Close()
		_ = os.RemoveAll(dir)
	}
}

func serve(conn net.Conn, reply func(command []any) (any, string)) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var req ipcRequest
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			return
		}

		data, errText := reply(req.Command)
		fmt.Fprintln(conn, `{"event":"playback-restart"}`)
		fmt.Fprintf(conn, `{"request_id":%d,"error":"success","data":null}`+"\n", req.RequestID+1000)

		payload, _ := json.Marshal(ipcMessage{Data: data, Error: errText, RequestID: req.RequestID})
		_, _ = conn.Write(append(payload, '\n'))
	}
}

func TestRoundTrip(t *testing.T) {
	Convey("Given an mpv IPC socket", t, func() {
		path, stop := fakeMPV(t, func(command []any) (any, string) {
			switch command[1] {
			case "time-pos":
				return 12.5, "success"
			case "pause":
				return true, "success"
			default:
				return nil, "property not found"
			}
		})
		defer stop()

		m := &MPV{socketPath: path}

		Convey("It should match replies by request id", func() {
			pos, err := m.TimePos()
			So(err, ShouldBeNil)
			So(pos, ShouldEqual, 12.5)

			paused, err := m.Paused()
			So(err, ShouldBeNil)
			So(paused, ShouldBeTrue)
		})

		Convey("It should surface mpv errors", func() {
			_, err := m.Duration()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "property not found")
		})

		Convey("It should reject replies of the wrong type", func() {
			_, err := m.floatProperty("pause")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given no socket", t, func() {
		m := &MPV{socketPath: filepath.Join(os.TempDir(), "dvs-missing.sock")}

		Convey("Calls should fail after retries", func() {
			_, err := m.call("get_property", "pid")
			So(err, ShouldNotBeNil)
		})

		Convey("The backend should not be running", func() {
			So(m.Running(), ShouldBeFalse)
		})
	})
}

func TestEventListener(t *testing.T) {
	Convey("Given a socket that pushes events", t, func() {
		dir, err := os.MkdirTemp("", "dvs")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "events.sock")
		ln, err := net.Listen("unix", path)
		So(err, ShouldBeNil)
		defer ln.Close()

		go func() {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			fmt.Fprintln(conn, `{"event":"start-file"}`)
			fmt.Fprintln(conn, `not json`)
			fmt.Fprintln(conn, `{"request_id":1,"error":"success"}`)
			fmt.Fprintln(conn, `{"event":"file-loaded"}`)
		}()

		events := make(chan string, 4)
		listener := NewEventListener(path, func(name string) { events <- name })
		So(listener.Start(), ShouldBeNil)
		defer listener.Stop()

		Convey("It should forward only event names, in order", func() {
			So(receive(events), ShouldEqual, "start-file")
			So(receive(events), ShouldEqual, "file-loaded")
		})
	})
}

func receive(events <-chan string) string {
	select {
	case name := <-events:
		return name
	case <-time.After(2 * time.Second):
		return ""
	}
}
