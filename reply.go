package irc

import "time"

// Reply is a server-to-client message. Each variant carries the fields it
// needs to render; rendering itself is the formatter's job (render.go).
type Reply interface {
	Render(host string) []byte
}

// Welcome is RPL_WELCOME (001), the first line of the welcome storm.
type Welcome struct{ Nick string }

// YourHost is RPL_YOURHOST (002).
type YourHost struct {
	Nick    string
	Version string
}

// Created is RPL_CREATED (003).
type Created struct {
	Nick      string
	CreatedAt time.Time
}

// MyInfo is RPL_MYINFO (004).
type MyInfo struct {
	Nick    string
	Version string
}

// Support is RPL_ISUPPORT (005).
type Support struct {
	Nick       string
	ChannelLen int
}

// LuserClient is RPL_LUSERCLIENT (251).
type LuserClient struct {
	Nick          string
	VisibleUsers  int
	InvisibleUsers int
	Servers       int
}

// LuserOp is RPL_LUSEROP (252).
type LuserOp struct {
	Nick      string
	Operators int
}

// LuserUnknown is RPL_LUSERUNKNOWN (253).
type LuserUnknown struct {
	Nick    string
	Unknown int
}

// LuserChannels is RPL_LUSERCHANNELS (254).
type LuserChannels struct {
	Nick     string
	Channels int
}

// LuserMe is RPL_LUSERME (255).
type LuserMe struct {
	Nick    string
	Clients int
	Servers int
}

// LocalUsers is RPL_LOCALUSERS (265).
type LocalUsers struct {
	Nick    string
	Current int
	Max     int
}

// GlobalUsers is RPL_GLOBALUSERS (266).
type GlobalUsers struct {
	Nick    string
	Current int
	Max     int
}

// StatsDLine is RPL_STATSDLINE (250).
type StatsDLine struct {
	Nick        string
	Connections int
	Clients     int
	Received    int
}

// MotdStart is RPL_MOTDSTART (375).
type MotdStart struct{ Nick string }

// MotdLine is RPL_MOTD (372), one per configured MOTD line.
type MotdLine struct {
	Nick string
	Line string
}

// EndOfMotd is RPL_ENDOFMOTD (376).
type EndOfMotd struct{ Nick string }

// JoinReply echoes a channel join to the sender and to other members.
type JoinReply struct {
	Client  string
	Channel string
}

// TopicReply is RPL_TOPIC (332), sent to a user who just joined a channel.
type TopicReply struct {
	Nick    string
	Channel string
	Topic   string
}

// TopicWhoTime is RPL_TOPICWHOTIME (333).
type TopicWhoTime struct {
	Channel string
	Nick    string
	SetAt   time.Time
}

// Nam is RPL_NAMREPLY (353): the member list of a channel.
type Nam struct {
	Nick    string
	Channel string
	Members []string
}

// EndOfNames is RPL_ENDOFNAMES (366).
type EndOfNames struct {
	Nick    string
	Channel string
}

// PartReply echoes a channel departure to the other members.
type PartReply struct {
	Client  string
	Channel string
}

// ChannelModeIs is RPL_CHANNELMODEIS (324); MODE always echoes a fixed mode
// string.
type ChannelModeIs struct {
	Nick    string
	Channel string
}

// CreationTime is RPL_CREATIONTIME (329).
type CreationTime struct {
	Nick      string
	Channel   string
	CreatedAt time.Time
}

// WhoReply is RPL_WHOREPLY (352), one per matched user.
type WhoReply struct {
	Nick          string
	Channel       string
	OtherUser     string
	OtherHost     string
	OtherServer   string
	OtherNick     string
	OtherRealname string
}

// EndOfWho is RPL_ENDOFWHO (315).
type EndOfWho struct {
	Nick string
	Mask string
}

// PrivMsg relays a channel message to a recipient.
type PrivMsg struct {
	Nick    string
	User    string
	Host    string
	Channel string
	Message string
}

// PongReply answers a client PING.
type PongReply struct {
	Token string
}

// PingReply is sent by the keepalive ticker toward an idle connection.
type PingReply struct {
	Token string
}

// QuitReply notifies a user that another connection (possibly themselves)
// has quit. Self is true only on the copy pushed to the quitting
// connection's own egress queue; its egress worker uses that to know
// when to terminate itself.
type QuitReply struct {
	Nick    string
	User    string
	Host    string
	Message string
	Self    bool
}

// ErrNoNickGiven is ERR_NONICKNAMEGIVEN (431).
type ErrNoNickGiven struct{}

// ErrNeedMoreParams is ERR_NEEDMOREPARAMS (461).
type ErrNeedMoreParams struct {
	Nick    string
	Command string
}

// ErrNoSuchChannel is ERR_NOSUCHCHANNEL (403).
type ErrNoSuchChannel struct {
	Nick    string
	Channel string
}

// ErrNotOnChannel is ERR_NOTONCHANNEL (442).
type ErrNotOnChannel struct {
	Nick    string
	Channel string
}

// Render implementations for each variant live in render.go.
