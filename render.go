package irc

import (
	"fmt"
	"strings"
	"time"
)

// timestamp reproduces the textual form the source server used for its
// UTC timestamps.
func timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05.999999999 UTC")
}

func (r Welcome) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :Welcome to the server %s", host, rplWelcome, r.Nick, r.Nick))
}

func (r YourHost) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :Your host is %s, running version %s", host, rplYourHost, r.Nick, host, r.Version))
}

func (r Created) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :This server was created %s", host, rplCreated, r.Nick, timestamp(r.CreatedAt)))
}

func (r MyInfo) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s %s %s %s", host, rplMyInfo, r.Nick, host, r.Version, welcomeUserModes, welcomeChannelModes))
}

func (r Support) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s CHANNELLEN=%d :are supported by this server", host, rplSupport, r.Nick, r.ChannelLen))
}

func (r LuserClient) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :There are %d users and %d invisible on %d servers",
		host, rplLuserClient, r.Nick, r.VisibleUsers, r.InvisibleUsers, r.Servers))
}

func (r LuserOp) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %d :IRC Operators online", host, rplLuserOp, r.Nick, r.Operators))
}

func (r LuserUnknown) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %d :unknown connection(s)", host, rplLuserUnknown, r.Nick, r.Unknown))
}

func (r LuserChannels) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %d :channels formed", host, rplLuserChans, r.Nick, r.Channels))
}

func (r LuserMe) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :I have %d clients and %d servers", host, rplLuserMe, r.Nick, r.Clients, r.Servers))
}

func (r LocalUsers) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %d %d :Current local users %d, max %d",
		host, rplLocalUsers, r.Nick, r.Current, r.Max, r.Current, r.Max))
}

func (r GlobalUsers) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %d %d :Current global users %d, max %d",
		host, rplGlobalUsers, r.Nick, r.Current, r.Max, r.Current, r.Max))
}

func (r StatsDLine) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :Highest connection count: %d (%d clients) (%d connections received)",
		host, rplStatsDLine, r.Nick, r.Connections, r.Clients, r.Received))
}

func (r MotdStart) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :- %s Message of the Day -", host, rplMotdStart, r.Nick, host))
}

func (r MotdLine) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :- %s", host, rplMotd, r.Nick, r.Line))
}

func (r EndOfMotd) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s :End of /MOTD command.", host, rplEndOfMotd, r.Nick))
}

func (r PongReply) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s PONG %s :%s", host, host, r.Token))
}

func (r PingReply) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s PING :%s", host, r.Token))
}

func (r JoinReply) Render(string) []byte {
	return []byte(fmt.Sprintf(":%s JOIN %s", r.Client, r.Channel))
}

func (r PartReply) Render(string) []byte {
	return []byte(fmt.Sprintf(":%s PART %s", r.Client, r.Channel))
}

func (r TopicReply) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s :%s", host, rplTopic, r.Nick, r.Channel, r.Topic))
}

func (r TopicWhoTime) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s %s %d", host, rplTopicWhoTime, r.Nick, r.Channel, r.Nick, r.SetAt.Unix()))
}

func (r Nam) Render(host string) []byte {
	members := r.Members
	if len(members) > parameterLimit {
		members = members[:parameterLimit]
	}
	return []byte(fmt.Sprintf(":%s %s %s = %s :%s", host, rplNam, r.Nick, r.Channel, strings.Join(members, " ")))
}

func (r EndOfNames) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s :End of NAMES list", host, rplEndOfNames, r.Nick, r.Channel))
}

func (r ChannelModeIs) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s %s %s", host, rplChannelModeIs, r.Nick, r.Channel, modeChannelModeIs, modeChannelArg))
}

func (r CreationTime) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s %d", host, rplCreationTime, r.Nick, r.Channel, r.CreatedAt.Unix()))
}

func (r WhoReply) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s %s %s %s %s H :0 %s",
		host, rplWho, r.Nick, r.Channel, r.OtherUser, r.OtherHost, r.OtherServer, r.OtherNick, r.OtherRealname))
}

func (r EndOfWho) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s :End of WHO list", host, rplEndOfWho, r.Nick, r.Mask))
}

func (r PrivMsg) Render(string) []byte {
	return []byte(fmt.Sprintf(":%s!%s@%s PRIVMSG %s :%s", r.Nick, r.User, r.Host, r.Channel, r.Message))
}

func (r QuitReply) Render(string) []byte {
	return []byte(fmt.Sprintf(":%s!%s@%s QUIT :%s", r.Nick, r.User, r.Host, r.Message))
}

func (r ErrNoNickGiven) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s * :No nickname given", host, errNoNickGiven))
}

func (r ErrNeedMoreParams) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s :Not enough parameters", host, errNeedMoreParams, r.Nick, r.Command))
}

func (r ErrNoSuchChannel) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s :No such channel", host, errNoSuchChannel, r.Nick, r.Channel))
}

func (r ErrNotOnChannel) Render(host string) []byte {
	return []byte(fmt.Sprintf(":%s %s %s %s :You're not on that channel", host, errNotOnChannel, r.Nick, r.Channel))
}
