package irc

// handleQuit implements QUIT. It removes the sender from every channel
// it was a member of, notifying the other members, and always answers
// the sender itself with a final Quit reply. It does not remove the
// connection record: that is left to the Disconnected event that
// follows when the socket closes.
func (d *Dispatcher) handleQuit(conn *connection, cmd Quit) replyBatch {
	message := cmd.Message
	if !cmd.Given {
		message = defaultQuitMessage
	}

	batch := make(replyBatch)
	quit := QuitReply{Nick: conn.nick, User: conn.user, Host: conn.host(), Message: message}

	for _, ch := range d.channels {
		if _, member := ch.members[conn.id]; !member {
			continue
		}
		delete(ch.members, conn.id)
		for id := range ch.members {
			batch[id] = append(batch[id], quit)
		}
	}

	self := quit
	self.Self = true
	batch[conn.id] = append(batch[conn.id], self)
	return batch
}
