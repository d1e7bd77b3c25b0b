package irc

import (
	"context"
	"io"
	"net"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Travis-Britz/ircd/ircdebug"
)

// egressQueueSize bounds the number of replies a connection's egress
// worker can fall behind by before the dispatcher's send to it blocks.
const egressQueueSize = 64

// Serve accepts connections on ln until ctx is cancelled, running one
// ingress, egress, and keepalive worker per connection against disp. If
// wireLog is non-nil, every accepted connection's raw bytes are teed to it
// for diagnosing wire-level issues. When ctx is cancelled (which closes
// ln), Serve returns once every spawned worker has exited. If Accept fails
// for any other reason, Serve returns that error at once without waiting
// for the workers.
func Serve(ctx context.Context, ln net.Listener, disp *Dispatcher, log *logrus.Logger, wireLog io.Writer) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return disp.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		return ln.Close()
	})

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return g.Wait()
			default:
				return err
			}
		}
		if wireLog != nil {
			conn = ircdebug.WriteTo(wireLog, conn, "-> ", "<- ")
		}
		g.Go(func() error {
			serveConn(ctx, conn, disp, log)
			return nil
		})
	}
}

// serveConn runs one connection's ingress, egress, and keepalive workers
// until any of them decides the connection is done.
func serveConn(ctx context.Context, conn net.Conn, disp *Dispatcher, log *logrus.Logger) {
	defer conn.Close()

	id := uuid.New()
	entry := log.WithField("conn", id)

	egress := make(chan Reply, egressQueueSize)
	pong := make(chan struct{}, 1)

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg errgroup.Group
	wg.Go(func() error {
		runEgress(connCtx, conn, egress, disp.ctx.Host, entry)
		cancel()
		return nil
	})
	wg.Go(func() error {
		runKeepalive(connCtx, conn, egress, pong, disp.ctx.Host, disp.ctx.PingFrequency)
		return nil
	})
	runIngress(connCtx, id, conn, disp.Inbound(), egress, pong, entry)
	cancel()
	wg.Wait()
}
