package irc

// handlePart implements PART. Each channel is checked for existence and
// membership before the member set is updated; other members are
// notified with a Part echo. The broadcast iterates the member set
// before removing the leaver from it, matching the source server; the
// leaver is iterated over but skipped by id, so it never receives its own
// Part echo.
func (d *Dispatcher) handlePart(conn *connection, cmd Part) replyBatch {
	if len(cmd.Channels) == 0 {
		return replyBatch{conn.id: {ErrNeedMoreParams{Nick: conn.nick, Command: verbPart}}}
	}

	batch := make(replyBatch)
	var toSender []Reply

	for _, name := range cmd.Channels {
		ch, ok := d.channels[name]
		if !ok {
			toSender = append(toSender, ErrNoSuchChannel{Nick: conn.nick, Channel: name})
			continue
		}
		if _, member := ch.members[conn.id]; !member {
			toSender = append(toSender, ErrNotOnChannel{Nick: conn.nick, Channel: name})
			continue
		}

		for id := range ch.members {
			if id == conn.id {
				continue
			}
			if _, ok := d.connections[id]; !ok {
				d.log.WithField("conn", id).Warn("channel member missing from connection table")
				continue
			}
			batch[id] = append(batch[id], PartReply{Client: conn.client, Channel: name})
		}

		delete(ch.members, conn.id)
	}

	if len(toSender) > 0 {
		batch[conn.id] = append(batch[conn.id], toSender...)
	}

	return batch
}
