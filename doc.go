/*
Package irc implements the dispatch core of a small IRC server.

The package centers on three pieces:

	// Dispatcher owns all server-side state (connections and channels)
	// and is the only component allowed to mutate it.
	type Dispatcher struct {
		// ...
	}

	// Command is a parsed client-to-server message, tagged by verb.
	type Command interface {
		command()
	}

	// Reply is a server-to-client message, tagged by variant, rendered
	// to wire bytes by its Render method.
	type Reply interface {
		Render(host string) []byte
	}

A single goroutine runs Dispatcher.Run, pulling Message values (a
connection id paired with a Command) off one inbound channel and handing
each to the handler for its verb. A handler returns a map from connection
id to an ordered list of Reply values; Run forwards each list to the
addressed connection's egress channel. Because only Run ever touches the
connection and channel tables, no locking is required around them.

Framing bytes into lines, parsing lines into Commands, and rendering
Replies back to bytes are specified as pure functions so that they, and
the dispatcher itself, can be driven from tests without opening a socket;
see package ircdtest.
*/
package irc
