package irc

import (
	"context"
	"net"
	"time"
)

// keepaliveGrace is how long a connection has to answer a Ping before it
// is considered dead.
const keepaliveGrace = 5 * time.Second

// runKeepalive pings conn on every tick of a fixed frequency ticker,
// skipping ticks while a Ping is still unanswered, and closes conn if no
// Pong arrives within keepaliveGrace of a Ping. Only Pong is observed:
// other inbound traffic does not delay the next Ping, and a Pong does not
// restart the ticker. Closing conn unblocks the
// paired ingress worker's Read, which then synthesizes Disconnected
// through the normal teardown path.
func runKeepalive(ctx context.Context, conn net.Conn, egress chan<- Reply, pong <-chan struct{}, host string, frequency time.Duration) {
	ticker := time.NewTicker(frequency)
	defer ticker.Stop()

	deadline := time.NewTimer(frequency)
	deadline.Stop()
	defer deadline.Stop()

	awaitingPong := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-pong:
			awaitingPong = false
			if !deadline.Stop() {
				select {
				case <-deadline.C:
				default:
				}
			}
		case <-ticker.C:
			if awaitingPong {
				continue
			}
			awaitingPong = true
			deadline.Reset(keepaliveGrace)
			select {
			case egress <- PingReply{Token: host}:
			case <-ctx.Done():
				return
			}
		case <-deadline.C:
			conn.Close()
			return
		}
	}
}
