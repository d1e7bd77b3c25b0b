package irc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// replyBatch maps a recipient connection id to the ordered replies a
// handler decided to send it.
type replyBatch map[uuid.UUID][]Reply

// Dispatcher is the single-owner core: it holds the connection and
// channel tables and is the only component that mutates them.
type Dispatcher struct {
	ctx ServerContext
	log *logrus.Entry
	met *metrics

	connections map[uuid.UUID]*connection
	channels    map[string]*channel

	inbound chan Message
}

// NewDispatcher constructs a Dispatcher over ctx. inboundCap bounds the
// shared inbound queue; ingress workers block once it fills, pushing
// backpressure to the network.
func NewDispatcher(ctx ServerContext, log *logrus.Logger, reg prometheus.Registerer, inboundCap int) *Dispatcher {
	if log == nil {
		log = logrus.New()
	}
	return &Dispatcher{
		ctx:         ctx,
		log:         log.WithField("component", "dispatcher"),
		met:         newMetrics(reg),
		connections: make(map[uuid.UUID]*connection),
		channels:    make(map[string]*channel),
		inbound:     make(chan Message, inboundCap),
	}
}

// Inbound returns the channel ingress workers and the MOTD watcher push
// Message values onto.
func (d *Dispatcher) Inbound() chan<- Message {
	return d.inbound
}

// Run consumes the inbound queue until ctx is cancelled. It is meant to
// be the sole goroutine that ever touches the connection and channel
// tables.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-d.inbound:
			d.dispatch(msg)
		}
	}
}

func (d *Dispatcher) dispatch(msg Message) {
	// Connected is always the first message for a connection id and is
	// handled outside the switch below so every other case can assume a
	// connection record exists (mirrors the source dispatcher).
	if connected, ok := msg.Cmd.(Connected); ok {
		d.handleConnected(msg.ConnID, connected)
		return
	}
	if reload, ok := msg.Cmd.(ReloadMotd); ok {
		d.ctx.MotdLines = reload.Lines
		return
	}

	conn, ok := d.connections[msg.ConnID]
	if !ok {
		d.log.WithField("conn", msg.ConnID).Warnf("message %T received before Connected", msg.Cmd)
		return
	}

	d.met.commandsTotal.WithLabelValues(fmt.Sprintf("%T", msg.Cmd)).Inc()

	var replies replyBatch
	switch cmd := msg.Cmd.(type) {
	case Disconnected:
		d.handleDisconnected(msg.ConnID)
		return
	case User:
		replies = d.handleUser(conn, cmd)
	case Nick:
		replies = d.handleNick(conn, cmd)
	case Join:
		replies = d.handleJoin(conn, cmd)
	case Part:
		replies = d.handlePart(conn, cmd)
	case Mode:
		replies = d.handleMode(conn, cmd)
	case Who:
		replies = d.handleWho(conn, cmd)
	case Privmsg:
		replies = d.handlePrivmsg(conn, cmd)
	case Ping:
		replies = d.handlePing(conn, cmd)
	case Quit:
		replies = d.handleQuit(conn, cmd)
	case Pong:
		return
	case Unhandled:
		d.log.WithField("conn", msg.ConnID).Debugf("unhandled line: %s", cmd.Raw)
		return
	default:
		d.log.WithField("conn", msg.ConnID).Errorf("unknown command type %T", cmd)
		return
	}

	d.send(replies)
}

func (d *Dispatcher) handleConnected(id uuid.UUID, c Connected) {
	d.connections[id] = &connection{
		id:         id,
		clientHost: c.ClientAddr,
		egress:     c.Sender,
	}
	d.met.connections.Set(float64(len(d.connections)))
}

// handleDisconnected removes the connection record. Channel membership is
// left untouched here; QUIT is the documented tear-down path for that.
func (d *Dispatcher) handleDisconnected(id uuid.UUID) {
	if _, ok := d.connections[id]; !ok {
		d.log.WithField("conn", id).Debug("disconnected connection already removed")
		return
	}
	delete(d.connections, id)
	d.met.connections.Set(float64(len(d.connections)))
}

// send pushes each recipient's replies onto their egress queue in order.
// A recipient whose record has been removed is silently skipped.
func (d *Dispatcher) send(replies replyBatch) {
	for id, rs := range replies {
		conn, ok := d.connections[id]
		if !ok {
			continue
		}
		for _, r := range rs {
			conn.egress <- r
			d.met.repliesTotal.Inc()
		}
	}
}
