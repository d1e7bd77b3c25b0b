package irc_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	irc "github.com/Travis-Britz/ircd"
	"github.com/Travis-Britz/ircd/ircdtest"
)

func newDispatcher(t *testing.T) *irc.Dispatcher {
	t.Helper()
	ctx := irc.ServerContext{
		StartTime:     time.Unix(0, 0),
		Host:          "irc.test",
		Version:       "test-0",
		PingFrequency: time.Minute,
	}
	return irc.NewDispatcher(ctx, logrus.New(), prometheus.NewRegistry(), 64)
}

func TestWelcomeStormIsExactlyFifteenReplies(t *testing.T) {
	disp := newDispatcher(t)
	h := ircdtest.Run(t, disp)

	conn := h.Connect("10.0.0.1:1234")
	conn.Send(irc.Nick{Nick: "alice", Given: true})

	replies := conn.DrainN(t, 15, time.Second)
	if _, ok := replies[0].(irc.Welcome); !ok {
		t.Fatalf("first reply = %#v, want Welcome", replies[0])
	}
	if _, ok := replies[len(replies)-1].(irc.EndOfMotd); !ok {
		t.Fatalf("last reply = %#v, want EndOfMotd", replies[len(replies)-1])
	}
}

func TestNickWithoutArgumentIsRejected(t *testing.T) {
	disp := newDispatcher(t)
	h := ircdtest.Run(t, disp)

	conn := h.Connect("10.0.0.1:1234")
	conn.Send(irc.Nick{Given: false})

	r := conn.Recv(time.Second)
	if _, ok := r.(irc.ErrNoNickGiven); !ok {
		t.Fatalf("reply = %#v, want ErrNoNickGiven", r)
	}
}

func TestJoinEchoesToOtherMembers(t *testing.T) {
	disp := newDispatcher(t)
	h := ircdtest.Run(t, disp)

	alice := h.Connect("10.0.0.1:1")
	alice.Send(irc.Nick{Nick: "alice", Given: true})
	alice.DrainN(t, 15, time.Second)

	bob := h.Connect("10.0.0.1:2")
	bob.Send(irc.Nick{Nick: "bob", Given: true})
	bob.DrainN(t, 15, time.Second)

	alice.Send(irc.Join{Channels: []string{"#general"}})
	aliceReplies := alice.DrainN(t, 5, time.Second)
	if _, ok := aliceReplies[0].(irc.JoinReply); !ok {
		t.Fatalf("alice's first join reply = %#v, want JoinReply", aliceReplies[0])
	}

	bob.Send(irc.Join{Channels: []string{"#general"}})
	// bob's own join set plus the echo alice receives of bob joining.
	bob.DrainN(t, 5, time.Second)
	aliceEcho := alice.Recv(time.Second)
	join, ok := aliceEcho.(irc.JoinReply)
	if !ok || join.Channel != "#general" {
		t.Fatalf("alice's echo = %#v, want JoinReply for #general", aliceEcho)
	}
}

func TestPrivmsgFansOutToOtherChannelMembers(t *testing.T) {
	disp := newDispatcher(t)
	h := ircdtest.Run(t, disp)

	alice := h.Connect("10.0.0.1:1")
	alice.Send(irc.Nick{Nick: "alice", Given: true})
	alice.DrainN(t, 15, time.Second)
	alice.Send(irc.Join{Channels: []string{"#general"}})
	alice.DrainN(t, 5, time.Second)

	bob := h.Connect("10.0.0.1:2")
	bob.Send(irc.Nick{Nick: "bob", Given: true})
	bob.DrainN(t, 15, time.Second)
	bob.Send(irc.Join{Channels: []string{"#general"}})
	bob.DrainN(t, 5, time.Second)
	alice.Recv(time.Second) // alice's echo of bob's join

	bob.Send(irc.Privmsg{Target: "#general", Message: "hello"})
	r := alice.Recv(time.Second)
	msg, ok := r.(irc.PrivMsg)
	if !ok || msg.Message != "hello" || msg.Nick != "bob" {
		t.Fatalf("alice received = %#v, want PrivMsg from bob", r)
	}
}

func TestPartBroadcastsThenRejectsFurtherPart(t *testing.T) {
	disp := newDispatcher(t)
	h := ircdtest.Run(t, disp)

	alice := h.Connect("10.0.0.1:1")
	alice.Send(irc.Nick{Nick: "alice", Given: true})
	alice.DrainN(t, 15, time.Second)
	alice.Send(irc.Join{Channels: []string{"#general"}})
	alice.DrainN(t, 5, time.Second)

	bob := h.Connect("10.0.0.1:2")
	bob.Send(irc.Nick{Nick: "bob", Given: true})
	bob.DrainN(t, 15, time.Second)
	bob.Send(irc.Join{Channels: []string{"#general"}})
	bob.DrainN(t, 5, time.Second)
	alice.Recv(time.Second) // alice's echo of bob's join

	bob.Send(irc.Part{Channels: []string{"#general"}})
	r := alice.Recv(time.Second)
	if _, ok := r.(irc.PartReply); !ok {
		t.Fatalf("alice received = %#v, want PartReply", r)
	}

	bob.Send(irc.Part{Channels: []string{"#general"}})
	r2 := bob.Recv(time.Second)
	if _, ok := r2.(irc.ErrNotOnChannel); !ok {
		t.Fatalf("bob's second part reply = %#v, want ErrNotOnChannel", r2)
	}
}

func TestQuitNotifiesOthersAndSelfLast(t *testing.T) {
	disp := newDispatcher(t)
	h := ircdtest.Run(t, disp)

	alice := h.Connect("10.0.0.1:1")
	alice.Send(irc.Nick{Nick: "alice", Given: true})
	alice.DrainN(t, 15, time.Second)
	alice.Send(irc.Join{Channels: []string{"#general"}})
	alice.DrainN(t, 5, time.Second)

	bob := h.Connect("10.0.0.1:2")
	bob.Send(irc.Nick{Nick: "bob", Given: true})
	bob.DrainN(t, 15, time.Second)
	bob.Send(irc.Join{Channels: []string{"#general"}})
	bob.DrainN(t, 5, time.Second)
	alice.Recv(time.Second) // alice's echo of bob's join

	bob.Send(irc.Quit{Message: "bye", Given: true})

	r := alice.Recv(time.Second)
	quit, ok := r.(irc.QuitReply)
	if !ok || quit.Self {
		t.Fatalf("alice received = %#v, want QuitReply with Self=false", r)
	}

	self := bob.Recv(time.Second)
	selfQuit, ok := self.(irc.QuitReply)
	if !ok || !selfQuit.Self {
		t.Fatalf("bob received = %#v, want QuitReply with Self=true", self)
	}
}
