package irc

import "github.com/google/uuid"

// Command is a parsed client-to-server message, or a synthetic lifecycle
// event injected by an ingress worker. Handlers switch on the concrete type
// rather than on a string verb.
type Command interface {
	command()
}

// Message is the unit of work the dispatcher consumes from its inbound
// queue: a connection id paired with the command it produced.
type Message struct {
	ConnID uuid.UUID
	Cmd    Command
}

// Connected is a synthetic event an ingress worker emits exactly once,
// before any other command, when a socket is accepted.
type Connected struct {
	Sender     chan<- Reply
	ClientAddr string
}

// Disconnected is a synthetic event an ingress worker emits exactly once,
// when its socket is closed for any reason.
type Disconnected struct{}

// Nick implements "NICK <nick>".
type Nick struct {
	Nick  string
	Given bool
}

// User implements "USER <user> <mode> <unused> :<realname>".
type User struct {
	User          string
	UserGiven     bool
	Realname      string
	RealnameGiven bool
}

// Join implements "JOIN <chan>{,<chan>}".
type Join struct {
	Channels []string
}

// Part implements "PART <chan>{,<chan>}".
type Part struct {
	Channels []string
}

// Mode implements "MODE <chan> [modes...]"; the mode parameters themselves
// are ignored.
type Mode struct {
	Channel string
}

// Who implements "WHO <mask>".
type Who struct {
	Mask  string
	Given bool
}

// Privmsg implements "PRIVMSG <target> :<message>".
type Privmsg struct {
	Target  string
	Message string
}

// Ping implements "PING <token>".
type Ping struct {
	Token string
	Given bool
}

// Pong implements "PONG <token>".
type Pong struct {
	Token string
}

// Quit implements "QUIT [:<message>]".
type Quit struct {
	Message string
	Given   bool
}

// Unhandled carries the raw line of any verb the parser doesn't recognize.
// It produces no reply; it exists for diagnostic logging only.
type Unhandled struct {
	Raw string
}

// ReloadMotd is a synthetic event carrying freshly re-read MOTD lines. It
// is injected by the MOTD file watcher rather than by a connection, so it
// carries no recipient and produces no reply.
type ReloadMotd struct {
	Lines []string
}

func (Connected) command()    {}
func (Disconnected) command() {}
func (Nick) command()         {}
func (User) command()         {}
func (Join) command()         {}
func (Part) command()         {}
func (Mode) command()         {}
func (Who) command()          {}
func (Privmsg) command()      {}
func (Ping) command()         {}
func (Pong) command()         {}
func (Quit) command()         {}
func (Unhandled) command()    {}
func (ReloadMotd) command()   {}
