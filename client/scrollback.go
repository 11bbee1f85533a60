package client

import "github.com/museun/streamchat/chatmsg"

// Scrollback is a bounded, drop-oldest history of printed records, sized by
// Client.BufferMax. A resize redraws the terminal from this buffer instead
// of only affecting messages that arrive afterward, mirroring the original
// client's buf: Queue<Message> replay in clear_and_write_all.
type Scrollback struct {
	capacity int
	head     int
	size     int
	entries  []chatmsg.Message
}

// NewScrollback creates a Scrollback holding at most capacity messages.
func NewScrollback(capacity int) *Scrollback {
	if capacity < 1 {
		capacity = 1
	}
	return &Scrollback{
		capacity: capacity,
		entries:  make([]chatmsg.Message, capacity),
	}
}

// Push appends msg, evicting the oldest entry once at capacity.
func (s *Scrollback) Push(msg chatmsg.Message) {
	tail := (s.head + s.size) % s.capacity
	s.entries[tail] = msg
	if s.size < s.capacity {
		s.size++
	} else {
		s.head = (s.head + 1) % s.capacity
	}
}

// All returns the buffered messages in push order.
func (s *Scrollback) All() []chatmsg.Message {
	out := make([]chatmsg.Message, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = s.entries[(s.head+i)%s.capacity]
	}
	return out
}

// Clear empties the buffer, mirroring State::clear.
func (s *Scrollback) Clear() {
	s.head = 0
	s.size = 0
}
