package irc

// handleNick implements NICK: on success it sets the connection's nick
// and derived client string and answers with the full welcome storm.
func (d *Dispatcher) handleNick(conn *connection, cmd Nick) replyBatch {
	if !cmd.Given {
		return replyBatch{conn.id: {ErrNoNickGiven{}}}
	}

	nick := cmd.Nick
	conn.nick = nick
	conn.client = nick + "!~" + nick + "@localhost"

	replies := []Reply{
		Welcome{Nick: nick},
		YourHost{Nick: nick, Version: d.ctx.Version},
		Created{Nick: nick, CreatedAt: d.ctx.StartTime},
		MyInfo{Nick: nick, Version: d.ctx.Version},
		Support{Nick: nick, ChannelLen: welcomeChannelLen},
		LuserClient{Nick: nick, VisibleUsers: welcomeVisibleUsers, InvisibleUsers: welcomeInvisUsers, Servers: welcomeServers},
		LuserOp{Nick: nick, Operators: welcomeOperators},
		LuserUnknown{Nick: nick, Unknown: welcomeUnknown},
		LuserChannels{Nick: nick, Channels: welcomeChannels},
		LuserMe{Nick: nick, Clients: welcomeClients, Servers: welcomeServers},
		LocalUsers{Nick: nick, Current: welcomeLocalCur, Max: welcomeLocalMax},
		GlobalUsers{Nick: nick, Current: welcomeGlobalCur, Max: welcomeGlobalMax},
		StatsDLine{Nick: nick, Connections: welcomeDLineConns, Clients: welcomeDLineClients, Received: welcomeDLineRecv},
		MotdStart{Nick: nick},
	}
	for _, line := range d.ctx.MotdLines {
		replies = append(replies, MotdLine{Nick: nick, Line: line})
	}
	replies = append(replies, EndOfMotd{Nick: nick})

	return replyBatch{conn.id: replies}
}
