// Package client implements the streamchatc runtime: connecting to the
// broker, decoding records, and driving the renderer.
package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/museun/streamchat/chatmsg"
)

// Connect dials the broker and returns the connection; Stream reads records
// from it.
func Connect(address string) (net.Conn, error) {
	conn, err := net.DialTimeout("tcp", address, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("client: connect %s: %w", address, err)
	}
	return conn, nil
}

// Stream reads JSON-line records from conn and sends them on the returned
// channel until the connection closes or the read loop errors, at which
// point the channel is closed. Grounded on the original client's reader
// thread feeding an unbounded channel to the draw loop.
func Stream(conn net.Conn) <-chan chatmsg.Message {
	out := make(chan chatmsg.Message)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(conn)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			var msg chatmsg.Message
			if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
				continue
			}
			out <- msg
		}
	}()
	return out
}

// WindowSize is a terminal size in character cells.
type WindowSize struct {
	Rows, Cols int
}

// PollResize polls fn every 100ms and sends a WindowSize whenever it
// changes, until stop is closed.
func PollResize(fn func() (WindowSize, error), stop <-chan struct{}) <-chan WindowSize {
	out := make(chan WindowSize)
	go func() {
		defer close(out)
		var last WindowSize
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				size, err := fn()
				if err != nil {
					continue
				}
				if size != last {
					last = size
					select {
					case out <- size:
					case <-stop:
						return
					}
				}
			}
		}
	}()
	return out
}
