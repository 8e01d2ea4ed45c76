//go:build unix

package socket

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// adopt wraps an already-bound, listening descriptor handed down by a parent process.
func adopt(fd int) (*Listener, error) {
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return nil, fmt.Errorf("fd %d is not a socket: %w", fd, err)
	}

	var kind Kind
	switch sa.(type) {
	case *unix.SockaddrUnix:
		kind = KindUnix
	case *unix.SockaddrInet4, *unix.SockaddrInet6:
		kind = KindTCP
	default:
		return nil, fmt.Errorf("fd %d: %w: address family %T", fd, ErrUnsupportedSocket, sa)
	}

	typ, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_TYPE)
	if err != nil {
		return nil, fmt.Errorf("fd %d: could not read socket type: %w", fd, err)
	}
	if typ != unix.SOCK_STREAM {
		return nil, fmt.Errorf("fd %d: %w: socket type %d", fd, ErrUnsupportedSocket, typ)
	}

	f := os.NewFile(uintptr(fd), fmt.Sprintf("listen-fd-%d", fd))
	// FileListener duplicates the descriptor; the original is closed with f.
	defer f.Close()

	l, err := net.FileListener(f)
	if err != nil {
		return nil, fmt.Errorf("fd %d: could not adopt listener: %w", fd, err)
	}
	return &Listener{Listener: l, Kind: kind, Inherited: true}, nil
}
