package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	seqReset      = []byte("\x1bc")
	seqHideCursor = []byte("\x1b[?25l")
	seqShowCursor = []byte("\x1b[?25h")
)

// Controller owns the terminal mode for the lifetime of a game.
// EnterRaw stores the original configuration, Restore reapplies it.
type Controller struct {
	dev   Device
	saved unix.Termios
	raw   bool
}

func NewController(dev Device) *Controller {
	return &Controller{dev: dev}
}

func (ctl *Controller) EnterRaw() error {
	saved, err := ctl.dev.GetMode()
	if err != nil {
		return fmt.Errorf("query terminal mode: %w", err)
	}
	if err := ctl.dev.SetMode(rawMode(saved)); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}

	ctl.saved = saved
	ctl.raw = true

	return nil
}

func (ctl *Controller) Restore() error {
	if !ctl.raw {
		return nil
	}
	ctl.raw = false

	return ctl.dev.SetMode(ctl.saved)
}

func (ctl *Controller) Reset() {
	_, _ = ctl.dev.Write(seqReset)
}

func (ctl *Controller) HideCursor() {
	_, _ = ctl.dev.Write(seqHideCursor)
}

func (ctl *Controller) ShowCursor() {
	_, _ = ctl.dev.Write(seqShowCursor)
}

// rawMode disables canonical input, echo and signal generation so every
// keystroke is delivered immediately and uninterpreted.
func rawMode(mode unix.Termios) unix.Termios {
	mode.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	mode.Iflag &^= unix.IXON | unix.ICRNL
	mode.Cc[unix.VMIN] = 1
	mode.Cc[unix.VTIME] = 0

	return mode
}
