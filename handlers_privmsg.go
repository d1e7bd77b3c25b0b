package irc

// handlePrivmsg implements PRIVMSG. An unknown target channel is a
// consistency anomaly: it is logged and dropped, not answered with an
// error numeric.
func (d *Dispatcher) handlePrivmsg(conn *connection, cmd Privmsg) replyBatch {
	ch, ok := d.channels[cmd.Target]
	if !ok {
		d.log.WithFields(map[string]interface{}{"conn": conn.id, "channel": cmd.Target}).
			Debug("PRIVMSG to unknown channel dropped")
		return nil
	}

	batch := make(replyBatch)
	for id := range ch.members {
		if id == conn.id {
			continue
		}
		other, ok := d.connections[id]
		if !ok {
			continue
		}
		batch[other.id] = append(batch[other.id], PrivMsg{
			Nick:    conn.nick,
			User:    conn.user,
			Host:    conn.host(),
			Channel: cmd.Target,
			Message: cmd.Message,
		})
	}
	return batch
}
