package irc

import (
	"context"
	"net"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// runIngress owns the read half of conn for the lifetime of one client.
// It frames bytes into lines, parses each into a Command, and forwards
// it as a Message to inbound; it synthesizes Connected before its first
// read and Disconnected on the way out, whatever the reason for leaving.
// Pong lines are intercepted here and signaled on pong directly rather
// than forwarded to the dispatcher: liveness tracking is the keepalive
// worker's concern, not dispatcher state.
func runIngress(ctx context.Context, id uuid.UUID, conn net.Conn, inbound chan<- Message, egress chan<- Reply, pong chan<- struct{}, log *logrus.Entry) {
	addr := ""
	if a := conn.RemoteAddr(); a != nil {
		addr = a.String()
	}

	select {
	case inbound <- Message{ConnID: id, Cmd: Connected{Sender: egress, ClientAddr: addr}}:
	case <-ctx.Done():
		return
	}
	defer func() {
		select {
		case inbound <- Message{ConnID: id, Cmd: Disconnected{}}:
		case <-ctx.Done():
		}
	}()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	var f framer
	buf := make([]byte, maxLineLength)
	for {
		n, rerr := conn.Read(buf)
		lines, ferr := f.feed(buf[:n], rerr != nil)

		for _, line := range lines {
			cmd := parse(line)
			if _, ok := cmd.(Pong); ok {
				select {
				case pong <- struct{}{}:
				default:
				}
				continue
			}
			select {
			case inbound <- Message{ConnID: id, Cmd: cmd}:
			case <-ctx.Done():
				return
			}
		}

		if ferr != nil {
			if ferr != errClosed {
				log.WithField("conn", id).WithError(ferr).Debug("ingress closing connection")
			}
			return
		}
		if rerr != nil {
			return
		}
	}
}
