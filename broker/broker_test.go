package broker

import (
	"bufio"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/museun/streamchat/chatmsg"
)

func testMessage(ts int64) chatmsg.Message {
	return chatmsg.Message{
		Version:   1,
		UserID:    "1",
		Timestamp: strconv.FormatInt(ts, 10),
		Name:      "alice",
		Data:      "hello",
	}
}

func TestBrokerFanOut(t *testing.T) {
	b := New(8, nil)
	if err := b.Listen("127.0.0.1:0"); err != nil {
		t.Fatalf("Listen: %v", err)
	}
	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- b.Run(stop) }()
	defer func() {
		close(stop)
		<-done
	}()

	conn, err := net.DialTimeout("tcp", b.Addr(), 2*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// give the accept pass a chance to pick up the new connection
	time.Sleep(50 * time.Millisecond)

	if err := b.Send(testMessage(1)); err != nil {
		t.Fatalf("Send: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line == "" {
		t.Fatalf("expected a non-empty line")
	}
}
