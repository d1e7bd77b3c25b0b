package irc

import "github.com/google/uuid"

// handleWho implements WHO. mask is first checked against channel names;
// if it names no channel, it is matched as a glob against every
// connection's hostmask instead.
func (d *Dispatcher) handleWho(conn *connection, cmd Who) replyBatch {
	if !cmd.Given {
		return replyBatch{conn.id: {ErrNeedMoreParams{Nick: conn.nick, Command: verbWho}}}
	}
	mask := cmd.Mask

	var matched []uuid.UUID
	isChannel := false

	if ch, ok := d.channels[mask]; ok {
		isChannel = true
		for id := range ch.members {
			matched = append(matched, id)
		}
	} else {
		for id, other := range d.connections {
			if matchMask(other.hostmask(), mask) {
				matched = append(matched, id)
			}
		}
	}

	channelField := "*"
	if isChannel {
		channelField = mask
	}

	var replies []Reply
	for _, id := range matched {
		other, ok := d.connections[id]
		if !ok {
			d.log.WithField("conn", id).Warn("WHO match missing from connection table")
			continue
		}
		replies = append(replies, WhoReply{
			Nick:          conn.nick,
			Channel:       channelField,
			OtherUser:     other.user,
			OtherHost:     other.host(),
			OtherServer:   d.ctx.Host,
			OtherNick:     other.nick,
			OtherRealname: other.realname,
		})
	}
	replies = append(replies, EndOfWho{Nick: conn.nick, Mask: mask})

	return replyBatch{conn.id: replies}
}
