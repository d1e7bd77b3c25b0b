// Package ircdtest drives an irc.Dispatcher from tests without opening a
// real socket: it injects Message values directly onto the dispatcher's
// inbound queue and exposes each connection's egress channel for
// assertions, the way Server in the teacher package's irctest package
// exposed a mock io.ReadWriteCloser for driving a client.
package ircdtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	irc "github.com/Travis-Britz/ircd"
)

// Harness runs a Dispatcher in the background for the life of a test and
// lets the test simulate connections against it.
type Harness struct {
	t      *testing.T
	disp   *irc.Dispatcher
	cancel context.CancelFunc
}

// Run starts disp.Run in the background and arranges for it to stop when
// the test ends.
func Run(t *testing.T, disp *irc.Dispatcher) *Harness {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h := &Harness{t: t, disp: disp, cancel: cancel}
	go disp.Run(ctx)
	t.Cleanup(cancel)
	return h
}

// Conn simulates one client connection: the egress channel the dispatcher
// writes Replies onto stands in for a real connection's per-socket queue.
type Conn struct {
	t       *testing.T
	id      uuid.UUID
	inbound chan<- irc.Message
	egress  chan irc.Reply
}

// Connect simulates a new socket accept: it sends Connected and returns a
// Conn for exercising the rest of that connection's lifecycle.
func (h *Harness) Connect(addr string) *Conn {
	h.t.Helper()
	c := &Conn{
		t:       h.t,
		id:      uuid.New(),
		inbound: h.disp.Inbound(),
		egress:  make(chan irc.Reply, 256),
	}
	c.Send(irc.Connected{Sender: c.egress, ClientAddr: addr})
	return c
}

// Send pushes cmd onto the dispatcher's inbound queue as if it came from
// this connection.
func (c *Conn) Send(cmd irc.Command) {
	c.t.Helper()
	c.inbound <- irc.Message{ConnID: c.id, Cmd: cmd}
}

// Disconnect simulates the socket closing.
func (c *Conn) Disconnect() {
	c.Send(irc.Disconnected{})
}

// Recv waits up to timeout for the next Reply addressed to this
// connection, failing the test if none arrives in time.
func (c *Conn) Recv(timeout time.Duration) irc.Reply {
	c.t.Helper()
	select {
	case r := <-c.egress:
		return r
	case <-time.After(timeout):
		c.t.Fatalf("timed out waiting for reply")
		return nil
	}
}

// Drain collects every reply currently queued for this connection without
// blocking for more.
func (c *Conn) Drain() []irc.Reply {
	var out []irc.Reply
	for {
		select {
		case r := <-c.egress:
			out = append(out, r)
		default:
			return out
		}
	}
}

// DrainN waits up to timeout for n replies to accumulate and returns them,
// failing the test if fewer than n arrive in time.
func (c *Conn) DrainN(t *testing.T, n int, timeout time.Duration) []irc.Reply {
	c.t.Helper()
	var out []irc.Reply
	deadline := time.After(timeout)
	for len(out) < n {
		select {
		case r := <-c.egress:
			out = append(out, r)
		case <-deadline:
			c.t.Fatalf("got %d replies, want %d: %+v", len(out), n, out)
			return out
		}
	}
	return out
}
