package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// Unix is an implementation wrapping Unix-specific operating system functions.
type Unix struct{}

// IoctlGetWinsize wraps around [unix.IoctlGetWinsize].
func (*Unix) IoctlGetWinsize(fd int, req uint) (*unix.Winsize, error) {
	return unix.IoctlGetWinsize(fd, req)
}

// IsTerminal returns whether the given file descriptor refers to a terminal
// with a usable window size.
func (u *Unix) IsTerminal(fd int) bool {
	ws, err := u.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return false
	}

	return ws.Col > 0 && ws.Row > 0
}
