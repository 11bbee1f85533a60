// Package daemon wires the upstream session, the command registry, and the
// broker transports together, implementing the per-PRIVMSG pipeline from
// spec.md §4.6.
package daemon

import (
	"github.com/sirupsen/logrus"

	"github.com/museun/streamchat/broker"
	"github.com/museun/streamchat/chatmsg"
	"github.com/museun/streamchat/colorstore"
	"github.com/museun/streamchat/commands"
	"github.com/museun/streamchat/ircwire"
	"github.com/museun/streamchat/upstream"
)

// Daemon owns the upstream session, the color store, the command registry,
// and every transport records are fanned out to.
type Daemon struct {
	session    *upstream.Session
	store      *colorstore.Store
	processor  *commands.Processor
	transports []broker.Transport
	log        *logrus.Entry
}

// New builds a Daemon. transports must contain at least the local broker.
func New(session *upstream.Session, store *colorstore.Store, processor *commands.Processor, transports []broker.Transport, log *logrus.Entry) *Daemon {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	d := &Daemon{
		session:    session,
		store:      store,
		processor:  processor,
		transports: transports,
		log:        log,
	}
	session.SetPrivMsgHandler(d.handlePrivMsg)
	return d
}

// Connect performs upstream registration (CAP/PASS/NICK, wait for
// GLOBALUSERSTATE, JOIN). Call once before Run.
func (d *Daemon) Connect() error {
	return d.session.Connect()
}

// handlePrivMsg implements the five-step pipeline from spec.md §4.6. It is
// registered as the upstream session's PrivMsg handler.
func (d *Daemon) handlePrivMsg(pm *ircwire.PrivMsg) {
	userID, ok := pm.Tags.UserID()
	if !ok {
		d.log.Warn("daemon: PRIVMSG without user-id, skipping")
		return
	}

	if !pm.IsAction && len(pm.Data) > 0 && pm.Data[0] == '!' {
		resp := d.processor.Dispatch(userID, pm.Data)
		if text, ok := resp.Text(); ok {
			if err := d.session.Say(text); err != nil {
				d.log.WithError(err).Warn("daemon: failed to send command reply upstream")
			}
		}
	}

	msg := chatmsg.Normalize(pm, d.store)

	for _, t := range d.transports {
		if err := t.Send(msg); err != nil {
			d.log.WithError(err).Warn("daemon: transport send failed")
		}
	}
}

// Run blocks running the upstream session's read loop. Returns the fatal
// error that ended the session, per spec.md §7.
func (d *Daemon) Run() error {
	return d.session.Run()
}
