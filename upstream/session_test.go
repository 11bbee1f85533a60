package upstream

import (
	"testing"

	"github.com/museun/streamchat/ircwire"
)

func TestConnectWaitsForGlobalUserState(t *testing.T) {
	mock := newMockConn(
		":tmi.twitch.tv CAP * ACK :twitch.tv/tags",
		"@display-name=Bot :tmi.twitch.tv GLOBALUSERSTATE",
	)
	s := New("bot", "token", "demo", WithConn(mock))

	if err := s.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if s.displayName != "Bot" {
		t.Errorf("displayName = %q", s.displayName)
	}

	foundJoin := false
	for _, w := range mock.written {
		if w == "JOIN #demo\r\n" {
			foundJoin = true
		}
	}
	if !foundJoin {
		t.Errorf("expected JOIN to be written, got %v", mock.written)
	}
}

func TestConnectFailsWithoutGlobalUserState(t *testing.T) {
	mock := newMockConn(":tmi.twitch.tv NOTICE * :login authentication failed")
	s := New("bot", "token", "demo", WithConn(mock))

	err := s.Connect()
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunAutoPong(t *testing.T) {
	mock := newMockConn("PING :tmi.twitch.tv")
	s := New("bot", "token", "demo", WithConn(mock))

	err := s.Run()
	if err == nil {
		t.Fatalf("expected Run to return an error once input is exhausted")
	}

	if len(mock.written) != 1 || mock.written[0] != "PONG :tmi.twitch.tv\r\n" {
		t.Fatalf("written = %v", mock.written)
	}
}

func TestRunDispatchesPrivMsg(t *testing.T) {
	mock := newMockConn("@user-id=1;display-name=A PRIVMSG #demo :hi")
	var got *ircwire.PrivMsg
	s := New("bot", "token", "demo", WithConn(mock), WithPrivMsgHandler(func(pm *ircwire.PrivMsg) {
		got = pm
	}))

	_ = s.Run()

	if got == nil || got.Data != "hi" {
		t.Fatalf("got = %+v", got)
	}
}

func TestSayLineSplitting(t *testing.T) {
	mock := newMockConn()
	s := New("bot", "token", "demo", WithConn(mock))
	if err := s.Say("hello"); err != nil {
		t.Fatalf("Say: %v", err)
	}
	if len(mock.written) != 1 || mock.written[0] != "PRIVMSG #demo :hello\r\n" {
		t.Fatalf("written = %v", mock.written)
	}
}
