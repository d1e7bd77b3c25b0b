package irc

import "strings"

// parse turns one CRLF-stripped line into a Command. Unrecognized verbs
// and malformed input both produce Unhandled rather than an error: a
// connection is never torn down for sending a command this server
// doesn't know.
func parse(line string) Command {
	l := lex(line)

	verbItem := l.nextItem()
	if verbItem.typ != itemCommand {
		drain(l)
		return Unhandled{Raw: line}
	}
	verb := strings.ToUpper(verbItem.val)

	var params []string
	for {
		it := l.nextItem()
		switch it.typ {
		case itemParam:
			params = append(params, it.val)
		case itemEOF:
			return fromVerb(verb, params, line)
		case itemError:
			return Unhandled{Raw: line}
		}
	}
}

// drain empties a lexer's item channel so its goroutine can exit after an
// early return.
func drain(l *lexer) {
	for range l.items {
	}
}

func fromVerb(verb string, params []string, raw string) Command {
	param := func(i int) (string, bool) {
		if i < len(params) {
			return params[i], true
		}
		return "", false
	}

	switch verb {
	case verbNick:
		nick, ok := param(0)
		return Nick{Nick: nick, Given: ok}
	case verbUser:
		user, userOK := param(0)
		realname, realnameOK := param(3)
		return User{
			User:          user,
			UserGiven:     userOK,
			Realname:      strings.TrimPrefix(realname, ":"),
			RealnameGiven: realnameOK,
		}
	case verbJoin:
		chans, _ := param(0)
		return Join{Channels: splitChannels(chans)}
	case verbPart:
		chans, _ := param(0)
		return Part{Channels: splitChannels(chans)}
	case verbMode:
		channel, _ := param(0)
		return Mode{Channel: channel}
	case verbWho:
		mask, ok := param(0)
		return Who{Mask: mask, Given: ok}
	case verbPrivmsg:
		target, _ := param(0)
		message, _ := param(1)
		return Privmsg{Target: target, Message: message}
	case verbPing:
		token, ok := param(0)
		return Ping{Token: token, Given: ok}
	case verbPong:
		token, _ := param(0)
		return Pong{Token: token}
	case verbQuit:
		message, ok := param(0)
		return Quit{Message: message, Given: ok}
	default:
		return Unhandled{Raw: raw}
	}
}

func splitChannels(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
