package broker

import "github.com/museun/streamchat/chatmsg"

// Transport is a polymorphic outbound sink: the daemon calls Send on every
// registered transport for each record, logging per-transport errors
// without letting them propagate. A Broker is itself a Transport (the local
// socket sink); FileTransport and WebSocketTransport are additional sinks
// that can run alongside it.
type Transport interface {
	Send(msg chatmsg.Message) error
}
