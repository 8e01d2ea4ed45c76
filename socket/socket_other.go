//go:build !unix

package socket

import "fmt"

func adopt(fd int) (*Listener, error) {
	return nil, fmt.Errorf("fd %d: %w: descriptor inheritance requires a unix platform", fd, ErrUnsupportedSocket)
}
