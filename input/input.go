package input

import (
	"io"
	"slices"
	"sync"

	"github.com/HandyGold75/GOLib/logger"
)

type (
	// Command is a decoded keystroke: a direction request or a quit.
	Command int

	keyBinds struct {
		ESC, CTRL_C, CTRL_D, Q,
		W, D, S, A, UP, RIGHT, DOWN, LEFT []byte
	}

	// Mailbox is a single-slot hand-off cell between the input reader
	// and the game loop. Put overwrites whatever is pending, Take never
	// blocks. Intermediate keystrokes between ticks are dropped on
	// purpose: only the latest input matters for the next tick.
	Mailbox struct {
		mu   sync.Mutex
		cmd  Command
		full bool
	}

	// Reader blocks on the raw terminal stream and publishes decoded
	// commands into the mailbox.
	Reader struct {
		In  io.Reader
		Box *Mailbox
		Lgr *logger.Logger
	}
)

const (
	Up Command = iota
	Right
	Down
	Left
	Quit
)

var binds = keyBinds{
	ESC:    []byte{27, 0, 0},
	CTRL_C: []byte{3, 0, 0}, CTRL_D: []byte{4, 0, 0}, Q: []byte{113, 0, 0},
	W: []byte{119, 0, 0}, D: []byte{100, 0, 0}, S: []byte{115, 0, 0}, A: []byte{97, 0, 0},
	UP: []byte{27, 91, 65}, RIGHT: []byte{27, 91, 67}, DOWN: []byte{27, 91, 66}, LEFT: []byte{27, 91, 68},
}

func NewMailbox() *Mailbox { return &Mailbox{} }

func (box *Mailbox) Put(cmd Command) {
	box.mu.Lock()
	box.cmd, box.full = cmd, true
	box.mu.Unlock()
}

func (box *Mailbox) Take() (Command, bool) {
	box.mu.Lock()
	defer box.mu.Unlock()

	if !box.full {
		return 0, false
	}
	box.full = false

	return box.cmd, true
}

// Decode maps one keystroke (up to 3 bytes, zero padded) to a Command.
// Unrecognized bytes report false and are ignored by the caller.
func Decode(in []byte) (Command, bool) {
	switch {
	case slices.Equal(in, binds.Q), slices.Equal(in, binds.ESC), slices.Equal(in, binds.CTRL_C), slices.Equal(in, binds.CTRL_D):
		return Quit, true
	case slices.Equal(in, binds.W), slices.Equal(in, binds.UP):
		return Up, true
	case slices.Equal(in, binds.D), slices.Equal(in, binds.RIGHT):
		return Right, true
	case slices.Equal(in, binds.S), slices.Equal(in, binds.DOWN):
		return Down, true
	case slices.Equal(in, binds.A), slices.Equal(in, binds.LEFT):
		return Left, true
	}

	return 0, false
}

// Run reads keystrokes until a quit key, a read error or the stop
// signal. The blocking read is abandoned in place on stop; the process
// is exiting and the terminal controller owns all teardown.
func (rd *Reader) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		in := make([]byte, 3)
		if _, err := rd.In.Read(in); err != nil {
			if rd.Lgr != nil {
				rd.Lgr.Log("high", "Input", err)
			}
			rd.Box.Put(Quit)
			return
		}

		cmd, ok := Decode(in)
		if !ok {
			continue
		}

		rd.Box.Put(cmd)
		if cmd == Quit {
			return
		}
	}
}
