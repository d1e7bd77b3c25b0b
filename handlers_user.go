package irc

// handleUser implements USER. It has no reply on success; missing
// parameters answer with ErrNeedMoreParams.
func (d *Dispatcher) handleUser(conn *connection, cmd User) replyBatch {
	if !cmd.UserGiven || !cmd.RealnameGiven {
		return replyBatch{conn.id: {ErrNeedMoreParams{Nick: conn.nick, Command: verbUser}}}
	}
	conn.user = cmd.User
	conn.realname = cmd.Realname
	return nil
}
