package irc

import "github.com/google/uuid"

// connection is the dispatcher's record of one client. Only the
// dispatcher goroutine reads or writes it.
type connection struct {
	id         uuid.UUID
	nick       string
	user       string
	realname   string
	client     string // "<nick>!~<nick>@localhost", set once nick is known
	clientHost string
	egress     chan<- Reply
}

// host returns the peer address recorded at connect time, or the fixed
// placeholder when none was recorded.
func (c *connection) host() string {
	if c.clientHost == "" {
		return defaultClientHost
	}
	return c.clientHost
}

// hostmask returns the nick!user@host string used for WHO matching and
// for PRIVMSG/QUIT sender identification.
func (c *connection) hostmask() string {
	return c.nick + "!" + c.user + "@" + c.host()
}
