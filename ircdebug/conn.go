/*
Package ircdebug contains a tee wrapper for logging the raw bytes crossing
a server connection, useful when diagnosing wire-level issues.
*/
package ircdebug

import (
	"io"
	"net"
)

// WriteTo wraps conn so every byte read from or written to it is also
// copied to w, each copy prefixed to distinguish direction. Unlike a plain
// io.ReadWriteCloser tee it preserves net.Conn's addressing and deadline
// methods, since the ingress/egress workers need RemoteAddr and friends on
// whatever they're handed.
func WriteTo(w io.Writer, conn net.Conn, outPrefix string, inPrefix string) net.Conn {
	return &debugConn{
		Conn: conn,
		r:    io.TeeReader(conn, &writePrefixer{w: w, prefix: inPrefix}),
		w:    io.MultiWriter(conn, &writePrefixer{w: w, prefix: outPrefix}),
	}
}

type debugConn struct {
	net.Conn
	r io.Reader
	w io.Writer
}

func (dc *debugConn) Read(p []byte) (int, error) {
	return dc.r.Read(p)
}
func (dc *debugConn) Write(p []byte) (int, error) {
	return dc.w.Write(p)
}

type writePrefixer struct {
	w      io.Writer
	prefix string
}

func (wp *writePrefixer) Write(p []byte) (n int, err error) {
	n, err = wp.w.Write(append([]byte(wp.prefix), p...))

	// this writePrefixer is used inside a MultiWriter and a TeeReader, so we
	// lie about the byte count to keep MultiWriter from treating the prefix
	// as a short write on this branch.
	return n - len(wp.prefix), err
}
