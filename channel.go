package irc

import "github.com/google/uuid"

// channel is a named multicast group. It is created lazily on the first
// successful JOIN and is never garbage collected once empty.
type channel struct {
	members map[uuid.UUID]struct{}
}

func newChannel() *channel {
	return &channel{members: make(map[uuid.UUID]struct{})}
}
