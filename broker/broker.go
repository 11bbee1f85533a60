package broker

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/museun/streamchat/chatmsg"
)

// DefaultAddress is the broker's default bind address.
const DefaultAddress = "localhost:51002"

// idle park window used when an iteration makes no progress, per spec.md
// §4.5 ("park the worker for 100-150 ms to avoid a busy spin").
const idlePark = 125 * time.Millisecond

type intakeItem struct {
	ts   int64
	line []byte
}

// Broker is the fan-out core: a bounded intake, a drop-oldest backlog, a
// non-blocking TCP listener, and the live subscriber list. All of this
// state is owned by the single goroutine running Run; Send is the only
// method safe to call from another goroutine.
type Broker struct {
	intake   chan intakeItem
	backlog  *Backlog
	log      *logrus.Entry
	nextID   uint32
	subs     []*Subscriber
	listener *net.TCPListener
}

// New creates a Broker with the given intake/backlog capacity.
func New(capacity int, log *logrus.Entry) *Broker {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Broker{
		intake:  make(chan intakeItem, capacity),
		backlog: NewBacklog(capacity),
		log:     log,
	}
}

// Listen binds the TCP listener. Must be called before Run.
func (b *Broker) Listen(address string) error {
	addr, err := net.ResolveTCPAddr("tcp", address)
	if err != nil {
		return fmt.Errorf("broker: resolve %s: %w", address, err)
	}
	ln, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return fmt.Errorf("broker: listen %s: %w", address, err)
	}
	b.listener = ln
	return nil
}

// Send implements Transport: it serializes msg and enqueues it, dropping
// the oldest pending item if the intake is full.
func (b *Broker) Send(msg chatmsg.Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("broker: marshal: %w", err)
	}
	line := append(raw, '\n')

	ts, err := timestampOf(msg)
	if err != nil {
		return err
	}

	item := intakeItem{ts: ts, line: line}
	select {
	case b.intake <- item:
		return nil
	default:
	}
	select {
	case <-b.intake:
	default:
	}
	b.intake <- item
	return nil
}

func timestampOf(msg chatmsg.Message) (int64, error) {
	var ts int64
	_, err := fmt.Sscanf(msg.Timestamp, "%d", &ts)
	return ts, err
}

// Run drives the accept / intake / drain loop until stop is closed.
func (b *Broker) Run(stop <-chan struct{}) error {
	if b.listener == nil {
		return fmt.Errorf("broker: Listen must be called before Run")
	}
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		progressed := b.acceptPass()
		if b.intakePass() {
			progressed = true
		}
		if progressed {
			b.drain()
		} else {
			time.Sleep(idlePark)
		}
	}
}

func (b *Broker) acceptPass() bool {
	progressed := false
	for {
		_ = b.listener.SetDeadline(time.Now().Add(time.Millisecond))
		conn, err := b.listener.Accept()
		if err != nil {
			break
		}
		b.nextID++
		b.subs = append(b.subs, newSubscriber(b.nextID, conn))
		b.log.WithField("subscriber", b.nextID).Debug("broker: accepted subscriber")
		progressed = true
	}
	return progressed
}

func (b *Broker) intakePass() bool {
	select {
	case item := <-b.intake:
		b.backlog.Push(item.ts, item.line)
		return true
	default:
		return false
	}
}

func (b *Broker) drain() {
	alive := b.subs[:0:0]
	for _, sub := range b.subs {
		if b.drainOne(sub) {
			alive = append(alive, sub)
		} else {
			sub.close()
			b.log.WithField("subscriber", sub.id).Debug("broker: evicted subscriber")
		}
	}
	b.subs = alive
}

func (b *Broker) drainOne(sub *Subscriber) bool {
	newest := sub.lastSeen
	for _, e := range b.backlog.Since(sub.lastSeen) {
		if err := sub.write(e.line); err != nil {
			return false
		}
		newest = e.ts
	}
	if err := sub.flush(); err != nil {
		return false
	}
	sub.lastSeen = newest
	return true
}

// Addr returns the bound listener address. Listen must have been called.
func (b *Broker) Addr() string {
	if b.listener == nil {
		return ""
	}
	return b.listener.Addr().String()
}

// Close closes the listener and every live subscriber connection.
func (b *Broker) Close() error {
	for _, sub := range b.subs {
		sub.close()
	}
	if b.listener == nil {
		return nil
	}
	return b.listener.Close()
}
