package terminal

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type (
	// Device is the narrow capability the game needs from the host
	// terminal: query/alter the line discipline and move raw bytes.
	Device interface {
		GetMode() (unix.Termios, error)
		SetMode(unix.Termios) error
		Read(p []byte) (int, error)
		Write(p []byte) (int, error)
	}

	ttyDevice struct {
		inFd, outFd int
	}
)

var ErrNotTerminal = errors.New("stdin/ stdout should be a terminal")

// Open returns the Device for the process's controlling terminal.
func Open() (Device, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	return &ttyDevice{inFd: int(os.Stdin.Fd()), outFd: int(os.Stdout.Fd())}, nil
}

func (d *ttyDevice) GetMode() (unix.Termios, error) {
	mode, err := unix.IoctlGetTermios(d.inFd, ioctlReadTermios)
	if err != nil {
		return unix.Termios{}, err
	}

	return *mode, nil
}

func (d *ttyDevice) SetMode(mode unix.Termios) error {
	return unix.IoctlSetTermios(d.inFd, ioctlWriteTermios, &mode)
}

func (d *ttyDevice) Read(p []byte) (int, error)  { return unix.Read(d.inFd, p) }
func (d *ttyDevice) Write(p []byte) (int, error) { return unix.Write(d.outFd, p) }

// Size reports the terminal dimensions in cells.
func Size() (int, int) {
	x, y, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}

	return x, y
}
