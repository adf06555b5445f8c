package screen

import (
	"errors"
	"io"
	"strconv"
	"unicode/utf8"
)

type (
	// Color is a basic ANSI foreground color.
	Color uint8

	// Pixel is one terminal cell.
	Pixel struct {
		Char  rune
		Color Color
	}

	// Matrix is a flat width×height grid of pixels.
	Matrix struct {
		width, height int
		cells         []Pixel
	}

	// FrameBuffer double-buffers the terminal display. Each frame is
	// drawn into the back matrix; Flush diff-encodes it against the
	// previous frame and hands the terminal one single write, so a
	// frame can never tear across multiple writes.
	FrameBuffer struct {
		width, height int
		front, back   *Matrix
		cache         []byte
		out           io.Writer
	}
)

const (
	DefaultColor Color = iota
	White
	Black
	Red
	Green
	Blue
	Yellow
)

const blankChar = ' '

var ErrBadSize = errors.New("screen dimensions should be positive")

func (c Color) sgr() string {
	switch c {
	case White:
		return "\x1b[37m"
	case Black:
		return "\x1b[30m"
	case Red:
		return "\x1b[31m"
	case Green:
		return "\x1b[32m"
	case Blue:
		return "\x1b[34m"
	case Yellow:
		return "\x1b[33m"
	}

	return "\x1b[0m"
}

func newMatrix(width, height int) *Matrix {
	m := &Matrix{width: width, height: height, cells: make([]Pixel, width*height)}
	m.Clear()

	return m
}

func (m *Matrix) Set(x, y int, p Pixel) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y*m.width+x] = p
}

func (m *Matrix) Get(x, y int) Pixel {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Pixel{Char: blankChar}
	}

	return m.cells[y*m.width+x]
}

func (m *Matrix) Clear() {
	for i := range m.cells {
		m.cells[i] = Pixel{Char: blankChar}
	}
}

func NewFrameBuffer(width, height int, out io.Writer) (*FrameBuffer, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadSize
	}

	return &FrameBuffer{
		width: width, height: height,
		front: newMatrix(width, height),
		back:  newMatrix(width, height),
		cache: make([]byte, 0, width*height*(4+5+10)),
		out:   out,
	}, nil
}

// Back is the matrix the next frame is drawn into.
func (f *FrameBuffer) Back() *Matrix { return f.back }

// Flush writes the difference between the drawn frame and the one on
// screen in a single write, then recycles the old frame as the next
// draw target. Cursor moves are only emitted when a run of changed
// cells breaks, color codes only when the color changes.
func (f *FrameBuffer) Flush() error {
	cmds := f.encodeDiff()
	f.front, f.back = f.back, f.front
	f.back.Clear()

	if len(cmds) == 0 {
		return nil
	}
	if _, err := f.out.Write(cmds); err != nil {
		return err
	}

	return nil
}

func (f *FrameBuffer) encodeDiff() []byte {
	cmds := f.cache[:0]
	lastX, lastY := -2, -1
	lastColor := Color(255)

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := f.back.Get(x, y)
			if p == f.front.Get(x, y) {
				continue
			}

			if y != lastY || x != lastX+1 {
				cmds = append(cmds, "\x1b["...)
				cmds = strconv.AppendInt(cmds, int64(y+1), 10)
				cmds = append(cmds, ';')
				cmds = strconv.AppendInt(cmds, int64(x+1), 10)
				cmds = append(cmds, 'H')
			}
			if p.Color != lastColor {
				cmds = append(cmds, p.Color.sgr()...)
				lastColor = p.Color
			}
			cmds = utf8.AppendRune(cmds, p.Char)
			lastX, lastY = x, y
		}
	}

	f.cache = cmds[:0]

	return cmds
}
