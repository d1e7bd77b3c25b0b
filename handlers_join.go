package irc

import "time"

// handleJoin implements JOIN. For each channel named, it creates the
// channel if missing, adds the sender, and sends the sender a five-reply
// join set (Join, Topic, TopicWhoTime, Nam, EndOfNames); every other
// member already in the channel receives just the Join echo.
func (d *Dispatcher) handleJoin(conn *connection, cmd Join) replyBatch {
	if len(cmd.Channels) == 0 {
		return replyBatch{conn.id: {ErrNeedMoreParams{Nick: conn.nick, Command: verbJoin}}}
	}

	now := time.Now()
	batch := make(replyBatch)

	for _, name := range cmd.Channels {
		ch, ok := d.channels[name]
		if !ok {
			ch = newChannel()
			d.channels[name] = ch
			d.met.channels.Set(float64(len(d.channels)))
		}
		ch.members[conn.id] = struct{}{}

		self := []Reply{
			JoinReply{Client: conn.client, Channel: name},
			TopicReply{Nick: conn.nick, Channel: name, Topic: defaultTopic},
			TopicWhoTime{Nick: conn.nick, Channel: name, SetAt: now},
		}

		var members []string
		for id := range ch.members {
			other, ok := d.connections[id]
			if !ok {
				d.log.WithField("conn", id).Warn("channel member missing from connection table")
				continue
			}
			if other.nick != "" {
				members = append(members, other.nick)
			}
		}
		self = append(self, Nam{Nick: conn.nick, Channel: name, Members: members})
		self = append(self, EndOfNames{Nick: conn.nick, Channel: name})

		batch[conn.id] = append(batch[conn.id], self...)

		for id := range ch.members {
			if id == conn.id {
				continue
			}
			if _, ok := d.connections[id]; !ok {
				continue
			}
			batch[id] = append(batch[id], JoinReply{Client: conn.client, Channel: name})
		}
	}

	return batch
}
