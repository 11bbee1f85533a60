package broker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/museun/streamchat/chatmsg"
)

// WebSocketTransport is an optional broadcast sink alongside the local
// socket broker and the file transport, grounded on the upstream fetch
// client's own use of gorilla/websocket (here rehomed to a downstream
// broadcast role) and on the Rust websocket transport's broadcaster design.
type WebSocketTransport struct {
	upgrader websocket.Upgrader
	log      *logrus.Entry

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewWebSocketTransport creates an empty transport ready to accept clients
// via its Handler.
func NewWebSocketTransport(log *logrus.Entry) *WebSocketTransport {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &WebSocketTransport{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log:     log,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler upgrades incoming HTTP connections to websockets and tracks them
// as broadcast recipients until the peer disconnects.
func (t *WebSocketTransport) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := t.upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.log.WithError(err).Warn("websocket transport: upgrade failed")
			return
		}
		t.mu.Lock()
		t.clients[conn] = struct{}{}
		t.mu.Unlock()

		go t.watch(conn)
	}
}

// watch blocks reading from conn (Twitch's subscribers never send anything
// meaningful) purely to detect disconnects, then removes conn from the
// broadcast set.
func (t *WebSocketTransport) watch(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	t.mu.Lock()
	delete(t.clients, conn)
	t.mu.Unlock()
	_ = conn.Close()
}

// Send implements Transport: it broadcasts msg to every connected client,
// dropping (and closing) any client whose write fails.
func (t *WebSocketTransport) Send(msg chatmsg.Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("websocket transport: marshal: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for conn := range t.clients {
		if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			delete(t.clients, conn)
			_ = conn.Close()
		}
	}
	return nil
}
