package socket

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ErrUnsupportedSocket is returned when an inherited descriptor is not a
// stream socket of the unix or inet family.
var ErrUnsupportedSocket = errors.New("unsupported socket")

// Kind is the transport family of a resolved listener.
type Kind int

const (
	// KindUnix is a unix-domain stream socket.
	KindUnix Kind = iota
	// KindTCP is an inet (IPv4 or IPv6) stream socket.
	KindTCP
)

func (k Kind) String() string {
	switch k {
	case KindUnix:
		return "unix"
	case KindTCP:
		return "tcp"
	default:
		return "unknown"
	}
}

// Listener is a ready-to-accept listening socket together with its transport kind.
type Listener struct {
	net.Listener
	Kind Kind

	// Inherited is set when the socket was adopted from a parent process.
	Inherited bool
}

// Resolve turns a listen specification into a listening socket.
//
//   - A non-negative integer is an inherited file descriptor. Its family is
//     read from the live socket; no bind is performed.
//   - A string starting with "/" is a filesystem path for a new unix socket.
//   - Anything else is a host:port for a new TCP socket.
func Resolve(spec string) (*Listener, error) {
	if fd, err := strconv.Atoi(spec); err == nil {
		if fd < 0 {
			return nil, fmt.Errorf("invalid file descriptor %d", fd)
		}
		return adopt(fd)
	}

	if strings.HasPrefix(spec, "/") {
		l, err := net.Listen("unix", spec)
		if err != nil {
			return nil, fmt.Errorf("could not bind unix socket %s: %w", spec, err)
		}
		return &Listener{Listener: l, Kind: KindUnix}, nil
	}

	l, err := net.Listen("tcp", spec)
	if err != nil {
		return nil, fmt.Errorf("could not bind tcp socket %s: %w", spec, err)
	}
	return &Listener{Listener: l, Kind: KindTCP}, nil
}
