package broker

import (
	"bufio"
	"net"
)

// Subscriber is one accepted broker client: its socket and the replay
// cursor marking the newest record already delivered to it.
type Subscriber struct {
	id       uint32
	conn     net.Conn
	writer   *bufio.Writer
	lastSeen int64
}

func newSubscriber(id uint32, conn net.Conn) *Subscriber {
	return &Subscriber{
		id:     id,
		conn:   conn,
		writer: bufio.NewWriter(conn),
	}
}

// write appends line to the subscriber's buffered writer without flushing.
func (s *Subscriber) write(line []byte) error {
	_, err := s.writer.Write(line)
	return err
}

// flush flushes the buffered writer.
func (s *Subscriber) flush() error {
	return s.writer.Flush()
}

func (s *Subscriber) close() {
	_ = s.conn.Close()
}
