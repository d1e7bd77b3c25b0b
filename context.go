package irc

import "time"

// ServerContext carries the external configuration the dispatcher needs:
// server identity, timing, and the banner text (spec §3, §6 "CLI/env").
// It is populated by startup code (cmd/ircd, internal/config) and passed
// once into NewDispatcher; afterwards the dispatcher changes only
// MotdLines, when a ReloadMotd event arrives.
type ServerContext struct {
	StartTime     time.Time
	Host          string
	Version       string
	PingFrequency time.Duration
	MotdLines     []string
}
