package irc

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the counters and gauges the dispatcher updates as it
// processes messages. Grounded on the Prometheus client used elsewhere in
// the example corpus for exposing service internals without coupling the
// core to any particular scrape transport.
type metrics struct {
	connections   prometheus.Gauge
	channels      prometheus.Gauge
	commandsTotal *prometheus.CounterVec
	repliesTotal  prometheus.Counter
}

// newMetrics registers the dispatcher's instruments against reg. Passing
// a fresh prometheus.NewRegistry() keeps tests hermetic; production wiring
// in cmd/ircd uses prometheus.DefaultRegisterer.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ircd",
			Name:      "connections_open",
			Help:      "Number of connections currently tracked by the dispatcher.",
		}),
		channels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ircd",
			Name:      "channels_open",
			Help:      "Number of channels currently tracked by the dispatcher.",
		}),
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ircd",
			Name:      "commands_total",
			Help:      "Commands processed by the dispatcher, by verb.",
		}, []string{"command"}),
		repliesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ircd",
			Name:      "replies_total",
			Help:      "Replies pushed onto connection egress queues.",
		}),
	}
	reg.MustRegister(m.connections, m.channels, m.commandsTotal, m.repliesTotal)
	return m
}
