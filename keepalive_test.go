package irc

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestKeepaliveSendsPingAfterSilence(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	egress := make(chan Reply, 4)
	pong := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runKeepalive(ctx, server, egress, pong, "irc.test", 20*time.Millisecond)

	select {
	case r := <-egress:
		if _, ok := r.(PingReply); !ok {
			t.Fatalf("reply = %#v, want PingReply", r)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for keepalive Ping")
	}
}

func TestKeepaliveClosesConnectionAfterMissedPong(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	egress := make(chan Reply, 4)
	pong := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		runKeepalive(ctx, server, egress, pong, "irc.test", 10*time.Millisecond)
		close(done)
	}()

	<-egress // initial Ping

	select {
	case <-done:
	case <-time.After(keepaliveGrace + time.Second):
		t.Fatal("keepalive did not close the connection after a missed pong")
	}

	if _, err := server.Write([]byte("x")); err == nil {
		t.Fatal("expected write to a closed connection to fail")
	}
}

func TestKeepaliveResetsOnPong(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	egress := make(chan Reply, 4)
	pong := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runKeepalive(ctx, server, egress, pong, "irc.test", 15*time.Millisecond)

	<-egress // initial Ping
	pong <- struct{}{}

	select {
	case <-egress:
	case <-time.After(time.Second):
		t.Fatal("keepalive did not send a second Ping after the connection stayed alive")
	}
}
