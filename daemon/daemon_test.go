package daemon

import (
	"path/filepath"
	"testing"

	"github.com/museun/streamchat/broker"
	"github.com/museun/streamchat/chatmsg"
	"github.com/museun/streamchat/colorstore"
	"github.com/museun/streamchat/commands"
	"github.com/museun/streamchat/ircwire"
	"github.com/museun/streamchat/upstream"
)

type recordingTransport struct {
	got []chatmsg.Message
}

func (r *recordingTransport) Send(msg chatmsg.Message) error {
	r.got = append(r.got, msg)
	return nil
}

var _ broker.Transport = (*recordingTransport)(nil)

func TestDaemonDispatchesPrivMsgToTransports(t *testing.T) {
	dir := t.TempDir()
	store := colorstore.Open(filepath.Join(dir, "c.json"), nil)
	processor := commands.NewProcessor()
	processor.Add("color", commands.ColorHandler(store))

	transport := &recordingTransport{}
	session := upstream.New("bot", "token", "demo")
	d := New(session, store, processor, []broker.Transport{transport}, nil)

	d.handlePrivMsg(mustPrivMsg(t, "@user-id=42;display-name=Alice PRIVMSG #demo :hello there"))

	if len(transport.got) != 1 {
		t.Fatalf("got %d messages, want 1", len(transport.got))
	}
	if transport.got[0].Name != "Alice" {
		t.Errorf("name = %q", transport.got[0].Name)
	}
}

func TestDaemonSkipsMissingUserID(t *testing.T) {
	dir := t.TempDir()
	store := colorstore.Open(filepath.Join(dir, "c.json"), nil)
	processor := commands.NewProcessor()
	transport := &recordingTransport{}
	session := upstream.New("bot", "token", "demo")
	d := New(session, store, processor, []broker.Transport{transport}, nil)

	d.handlePrivMsg(mustPrivMsg(t, "PRIVMSG #demo :hello"))

	if len(transport.got) != 0 {
		t.Errorf("expected no transport sends, got %d", len(transport.got))
	}
}

func mustPrivMsg(t *testing.T, line string) *ircwire.PrivMsg {
	t.Helper()
	m, ok := ircwire.Parse(line)
	if !ok {
		t.Fatalf("failed to parse %q", line)
	}
	pm, ok := m.IsPrivMsg()
	if !ok {
		t.Fatalf("not a PRIVMSG: %q", line)
	}
	return pm
}
