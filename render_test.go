package irc

import (
	"testing"
	"time"
)

func TestRenderWelcomeStorm(t *testing.T) {
	const host = "localhost"

	cases := []struct {
		reply Reply
		want  string
	}{
		{Welcome{Nick: "JIM"}, ":localhost 001 JIM :Welcome to the server JIM"},
		{YourHost{Nick: "JIM", Version: "0.0.1"}, ":localhost 002 JIM :Your host is localhost, running version 0.0.1"},
		{MyInfo{Nick: "JIM", Version: "0.0.1"}, ":localhost 004 JIM localhost 0.0.1 r i"},
		{Support{Nick: "JIM", ChannelLen: 100}, ":localhost 005 JIM CHANNELLEN=100 :are supported by this server"},
		{LuserClient{Nick: "JIM", VisibleUsers: 100, InvisibleUsers: 20, Servers: 1}, ":localhost 251 JIM :There are 100 users and 20 invisible on 1 servers"},
		{LuserOp{Nick: "JIM", Operators: 1337}, ":localhost 252 JIM 1337 :IRC Operators online"},
		{LuserUnknown{Nick: "JIM", Unknown: 7}, ":localhost 253 JIM 7 :unknown connection(s)"},
		{LuserChannels{Nick: "JIM", Channels: 9999}, ":localhost 254 JIM 9999 :channels formed"},
		{LuserMe{Nick: "JIM", Clients: 900, Servers: 1}, ":localhost 255 JIM :I have 900 clients and 1 servers"},
		{LocalUsers{Nick: "JIM", Current: 845, Max: 1000}, ":localhost 265 JIM 845 1000 :Current local users 845, max 1000"},
		{GlobalUsers{Nick: "JIM", Current: 9823, Max: 23455}, ":localhost 266 JIM 9823 23455 :Current global users 9823, max 23455"},
		{StatsDLine{Nick: "JIM", Connections: 9998, Clients: 9000, Received: 99999}, ":localhost 250 JIM :Highest connection count: 9998 (9000 clients) (99999 connections received)"},
		{MotdStart{Nick: "JIM"}, ":localhost 375 JIM :- localhost Message of the Day -"},
		{MotdLine{Nick: "JIM", Line: "Foobar"}, ":localhost 372 JIM :- Foobar"},
		{EndOfMotd{Nick: "JIM"}, ":localhost 376 JIM :End of /MOTD command."},
		{PongReply{Token: "LAG1238948394"}, ":localhost PONG localhost :LAG1238948394"},
	}

	for _, c := range cases {
		got := string(c.reply.Render(host))
		if got != c.want {
			t.Errorf("%#v.Render(%q) = %q, want %q", c.reply, host, got, c.want)
		}
	}
}

func TestRenderEchoes(t *testing.T) {
	const host = "localhost"

	cases := []struct {
		reply Reply
		want  string
	}{
		{JoinReply{Client: "joe!~joe@localhost", Channel: "#go"}, ":joe!~joe@localhost JOIN #go"},
		{PartReply{Client: "joe!~joe@localhost", Channel: "#go"}, ":joe!~joe@localhost PART #go"},
		{PrivMsg{Nick: "joe", User: "joe", Host: "localhost", Channel: "#go", Message: "hi"}, ":joe!joe@localhost PRIVMSG #go :hi"},
		{QuitReply{Nick: "joe", User: "joe", Host: "localhost", Message: "leaving"}, ":joe!joe@localhost QUIT :leaving"},
		{ErrNeedMoreParams{Nick: "joe", Command: "JOIN"}, ":localhost 461 joe JOIN :Not enough parameters"},
		{ErrNoSuchChannel{Nick: "joe", Channel: "#go"}, ":localhost 403 joe #go :No such channel"},
		{ErrNotOnChannel{Nick: "joe", Channel: "#go"}, ":localhost 442 joe #go :You're not on that channel"},
		{ErrNoNickGiven{}, ":localhost 431 * :No nickname given"},
	}

	for _, c := range cases {
		got := string(c.reply.Render(host))
		if got != c.want {
			t.Errorf("%#v.Render(%q) = %q, want %q", c.reply, host, got, c.want)
		}
	}
}

func TestRenderCreatedIncludesTimestamp(t *testing.T) {
	now := time.Now()
	r := Created{Nick: "JIM", CreatedAt: now}
	got := string(r.Render("localhost"))
	want := ":localhost 003 JIM :This server was created " + timestamp(now)
	if got != want {
		t.Errorf("Created.Render = %q, want %q", got, want)
	}
}
