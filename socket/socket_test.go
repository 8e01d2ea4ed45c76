//go:build unix

package socket

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// shortTempDir keeps unix socket paths under the sun_path limit.
func shortTempDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "sock")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// dupListenerFd returns a raw descriptor for l that the caller owns.
func dupListenerFd(t *testing.T, l net.Listener) int {
	filer, ok := l.(interface{ File() (*os.File, error) })
	require.True(t, ok)

	f, err := filer.File()
	require.NoError(t, err)
	defer f.Close()

	fd, err := unix.Dup(int(f.Fd()))
	require.NoError(t, err)
	return fd
}

func TestResolveTCP(t *testing.T) {
	l, err := Resolve("127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, KindTCP, l.Kind)
	assert.False(t, l.Inherited)
	assert.Equal(t, "tcp", l.Addr().Network())
}

func TestResolveUnixPath(t *testing.T) {
	path := filepath.Join(shortTempDir(t), "mgr.sock")

	l, err := Resolve(path)
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, KindUnix, l.Kind)
	assert.Equal(t, path, l.Addr().String())

	// A second listener on the same path must fail.
	_, err = Resolve(path)
	assert.Error(t, err)
}

func TestResolveInvalidAddress(t *testing.T) {
	_, err := Resolve("not-a-host-port")
	assert.Error(t, err)

	_, err = Resolve("-1")
	assert.Error(t, err)
}

func TestResolveInheritedTCP(t *testing.T) {
	parent, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer parent.Close()

	fd := dupListenerFd(t, parent)

	l, err := Resolve(strconv.Itoa(fd))
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, KindTCP, l.Kind)
	assert.True(t, l.Inherited)
	assert.Equal(t, parent.Addr().String(), l.Addr().String())

	// The adopted socket accepts connections made to the parent's address.
	accepted := make(chan error, 1)
	go func() {
		conn, err := l.Accept()
		if err == nil {
			conn.Close()
		}
		accepted <- err
	}()

	conn, err := net.Dial("tcp", parent.Addr().String())
	require.NoError(t, err)
	conn.Close()
	assert.NoError(t, <-accepted)
}

func TestResolveInheritedUnix(t *testing.T) {
	path := filepath.Join(shortTempDir(t), "parent.sock")
	parent, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer parent.Close()

	fd := dupListenerFd(t, parent)

	l, err := Resolve(strconv.Itoa(fd))
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, KindUnix, l.Kind)
	assert.True(t, l.Inherited)
}

func TestResolveInheritedNotASocket(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	fd, err := unix.Dup(int(r.Fd()))
	require.NoError(t, err)
	defer unix.Close(fd)

	_, err = Resolve(strconv.Itoa(fd))
	assert.Error(t, err)
}

func TestResolveInheritedDatagram(t *testing.T) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	require.NoError(t, err)
	defer unix.Close(fd)
	require.NoError(t, unix.Bind(fd, &unix.SockaddrInet4{Addr: [4]byte{127, 0, 0, 1}}))

	_, err = Resolve(strconv.Itoa(fd))
	assert.True(t, errors.Is(err, ErrUnsupportedSocket), "got %v", err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unix", KindUnix.String())
	assert.Equal(t, "tcp", KindTCP.String())
}
