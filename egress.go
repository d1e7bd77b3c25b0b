package irc

import (
	"bufio"
	"context"
	"net"

	"github.com/sirupsen/logrus"
)

// runEgress owns the write half of conn for the lifetime of one client.
// It drains replies, a per-connection reply queue fed by the dispatcher
// and by the connection's keepalive worker, renders each with host, and
// writes it CRLF-terminated. It returns when ctx is cancelled, the
// connection errors, or it drains its own self-addressed Quit reply.
func runEgress(ctx context.Context, conn net.Conn, replies <-chan Reply, host string, log *logrus.Entry) {
	w := bufio.NewWriter(conn)
	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-replies:
			if !ok {
				return
			}
			if _, err := w.Write(r.Render(host)); err != nil {
				log.WithError(err).Debug("egress write error")
				return
			}
			if _, err := w.Write([]byte("\r\n")); err != nil {
				log.WithError(err).Debug("egress write error")
				return
			}
			if err := w.Flush(); err != nil {
				log.WithError(err).Debug("egress flush error")
				return
			}
			if q, ok := r.(QuitReply); ok && q.Self {
				return
			}
		}
	}
}
