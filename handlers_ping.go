package irc

// handlePing implements client-initiated PING, answered with PONG.
func (d *Dispatcher) handlePing(conn *connection, cmd Ping) replyBatch {
	if !cmd.Given {
		return replyBatch{conn.id: {ErrNeedMoreParams{Nick: conn.nick, Command: verbPing}}}
	}
	return replyBatch{conn.id: {PongReply{Token: cmd.Token}}}
}
