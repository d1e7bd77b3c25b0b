package irc

import "time"

// handleMode implements MODE. Mode parameters are always ignored: the
// server echoes back a fixed mode string regardless of what was
// requested.
func (d *Dispatcher) handleMode(conn *connection, cmd Mode) replyBatch {
	return replyBatch{conn.id: {
		ChannelModeIs{Nick: conn.nick, Channel: cmd.Channel},
		CreationTime{Nick: conn.nick, Channel: cmd.Channel, CreatedAt: time.Now()},
	}}
}
