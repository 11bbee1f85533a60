package broker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/museun/streamchat/chatmsg"
)

// FileTransport appends every record to a file, either as raw JSON lines
// or, when Formatted is set, as "<name>: <data>" lines for human reading.
type FileTransport struct {
	mu        sync.Mutex
	file      *os.File
	writer    *bufio.Writer
	Formatted bool
}

// NewFileTransport opens (creating/appending) the file at path.
func NewFileTransport(path string, formatted bool) (*FileTransport, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("broker: open file transport: %w", err)
	}
	return &FileTransport{
		file:      f,
		writer:    bufio.NewWriter(f),
		Formatted: formatted,
	}, nil
}

// Send implements Transport.
func (t *FileTransport) Send(msg chatmsg.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Formatted {
		if _, err := fmt.Fprintf(t.writer, "%s: %s\n", msg.Name, msg.Data); err != nil {
			return err
		}
	} else {
		raw, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("broker: file transport marshal: %w", err)
		}
		if _, err := t.writer.Write(append(raw, '\n')); err != nil {
			return err
		}
	}
	return t.writer.Flush()
}

// Close flushes and closes the underlying file.
func (t *FileTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.writer.Flush()
	return t.file.Close()
}
