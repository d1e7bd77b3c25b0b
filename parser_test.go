package irc

import (
	"testing"

	"github.com/go-test/deep"
)

func TestParseRecognizedCommands(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"NICK JOE", Nick{Nick: "JOE", Given: true}},
		{"NICK", Nick{Given: false}},
		{"USER joe 0 * :Joe Bloggs", User{User: "joe", UserGiven: true, Realname: "Joe Bloggs", RealnameGiven: true}},
		{"JOIN #a,#b", Join{Channels: []string{"#a", "#b"}}},
		{"JOIN", Join{Channels: nil}},
		{"PART #a", Part{Channels: []string{"#a"}}},
		{"MODE #a +n", Mode{Channel: "#a"}},
		{"WHO #a", Who{Mask: "#a", Given: true}},
		{"WHO", Who{Given: false}},
		{"PRIVMSG #a :hi there", Privmsg{Target: "#a", Message: "hi there"}},
		{"PING abc123", Ping{Token: "abc123", Given: true}},
		{"PONG abc123", Pong{Token: "abc123"}},
		{"QUIT :goodbye", Quit{Message: "goodbye", Given: true}},
		{"QUIT", Quit{Given: false}},
		{"FOOBAR x y z", Unhandled{Raw: "FOOBAR x y z"}},
	}
	for _, c := range cases {
		got := parse(c.line)
		if diff := deep.Equal(got, c.want); diff != nil {
			t.Errorf("parse(%q) mismatch: %v", c.line, diff)
		}
	}
}
