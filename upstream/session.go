// Package upstream manages the single long-lived IRC session to Twitch:
// registration, the read loop, auto-PONG, and outbound line splitting.
package upstream

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/museun/streamchat/ircwire"
)

// DefaultAddress is the plain-TCP Twitch IRC endpoint.
const DefaultAddress = "irc.chat.twitch.tv:6667"

// ErrRegistrationFailed is returned by Connect when GLOBALUSERSTATE is never
// observed - distinct from a plain I/O failure.
var ErrRegistrationFailed = errors.New("upstream: registration failed, no GLOBALUSERSTATE observed")

// Session owns one upstream IRC connection.
type Session struct {
	conn    Conn
	address string
	nick    string
	token   string
	channel string
	log     *logrus.Entry

	onPrivMsg func(*ircwire.PrivMsg)

	displayName string
}

// Option configures a Session.
type Option func(*Session)

// WithAddress overrides the default upstream address.
func WithAddress(addr string) Option {
	return func(s *Session) { s.address = addr }
}

// WithConn injects a pre-built Conn, bypassing DialTCP entirely (used by tests).
func WithConn(conn Conn) Option {
	return func(s *Session) { s.conn = conn }
}

// WithLogger sets the logger used for session diagnostics.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Session) { s.log = log }
}

// WithPrivMsgHandler sets the callback invoked for every parsed PRIVMSG.
func WithPrivMsgHandler(fn func(*ircwire.PrivMsg)) Option {
	return func(s *Session) { s.onPrivMsg = fn }
}

// SetPrivMsgHandler replaces the PRIVMSG callback after construction, for
// callers (such as daemon.Daemon) that need the Session to exist before
// they can build the handler closure.
func (s *Session) SetPrivMsgHandler(fn func(*ircwire.PrivMsg)) {
	s.onPrivMsg = fn
}

// New builds a Session for the given nick/token/channel.
func New(nick, token, channel string, opts ...Option) *Session {
	s := &Session{
		address: DefaultAddress,
		nick:    nick,
		token:   normalizeToken(token),
		channel: channel,
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeToken(token string) string {
	if token == "" {
		return token
	}
	const prefix = "oauth:"
	if len(token) >= len(prefix) && token[:len(prefix)] == prefix {
		return token
	}
	return prefix + token
}

// Connect dials (unless a Conn was injected), negotiates capabilities,
// authenticates, and blocks until GLOBALUSERSTATE is observed, then joins
// the configured channel.
func (s *Session) Connect() error {
	if s.conn == nil {
		conn, err := DialTCP(s.address)
		if err != nil {
			return fmt.Errorf("upstream: dial: %w", err)
		}
		s.conn = conn
	}

	for _, cap := range []string{"twitch.tv/tags", "twitch.tv/membership", "twitch.tv/commands"} {
		if err := s.writeRaw(fmt.Sprintf("CAP REQ :%s", cap)); err != nil {
			return fmt.Errorf("upstream: registration: %w", err)
		}
	}
	if err := s.writeRaw("PASS " + s.token); err != nil {
		return fmt.Errorf("upstream: registration: %w", err)
	}
	if err := s.writeRaw("NICK " + s.nick); err != nil {
		return fmt.Errorf("upstream: registration: %w", err)
	}

	if err := s.waitForReady(); err != nil {
		return err
	}

	if err := s.writeRaw("JOIN #" + s.channel); err != nil {
		return fmt.Errorf("upstream: join: %w", err)
	}
	return nil
}

func (s *Session) waitForReady() error {
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		_ = s.conn.SetDeadline(time.Now().Add(2 * time.Second))
		line, err := s.conn.ReadLine()
		if err != nil {
			if errors.Is(err, ErrTick) {
				continue
			}
			return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
		}
		msg, ok := ircwire.Parse(line)
		if !ok {
			continue
		}
		if msg.Command == "GLOBALUSERSTATE" {
			s.displayName = msg.Tags.DisplayName()
			return nil
		}
	}
	return ErrRegistrationFailed
}

// Run reads upstream messages until a fatal error occurs. PING is answered
// automatically; PRIVMSG is handed to the configured handler; anything else
// is logged and skipped.
func (s *Session) Run() error {
	for {
		_ = s.conn.SetDeadline(time.Now().Add(100 * time.Millisecond))
		line, err := s.conn.ReadLine()
		if err != nil {
			if errors.Is(err, ErrTick) {
				continue
			}
			return fmt.Errorf("upstream: read: %w", err)
		}

		msg, ok := ircwire.Parse(line)
		if !ok {
			s.log.WithField("line", line).Debug("upstream: unparseable line")
			continue
		}

		if data, isPing := msg.IsPing(); isPing {
			if err := s.writeRaw("PONG :" + data); err != nil {
				return fmt.Errorf("upstream: pong write: %w", err)
			}
			continue
		}

		if pm, ok := msg.IsPrivMsg(); ok {
			if s.onPrivMsg != nil {
				s.onPrivMsg(pm)
			}
			continue
		}

		s.log.WithField("command", msg.Command).Debug("upstream: unhandled command")
	}
}

// Say sends a PRIVMSG to the joined channel, splitting it if necessary.
func (s *Session) Say(text string) error {
	return s.writeRaw(fmt.Sprintf("PRIVMSG #%s :%s", s.channel, text))
}

func (s *Session) writeRaw(line string) error {
	for _, chunk := range ircwire.SplitLine(line) {
		if err := s.conn.WriteRaw(chunk); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying connection.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
