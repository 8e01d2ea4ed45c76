// Package socket resolves the listen specification of a manager into a
// listening socket.
//
// The specification is a single string:
//
//	3                  inherited file descriptor (socket activation)
//	/run/keepmgr.sock  new unix-domain socket at that path
//	127.0.0.1:8080     new TCP socket
//
// For inherited descriptors the transport is determined by inspecting the
// live socket with getsockname(2) rather than trusting the string, and the
// descriptor must be a SOCK_STREAM socket. Binding a path that is already in
// use fails like any other bind.
//
// The resulting Listener embeds net.Listener so the server loop is written
// once for both kinds.
package socket
