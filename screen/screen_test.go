package screen

import (
	"strings"
	"testing"
)

type countingWriter struct {
	writes int
	buf    strings.Builder
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	w.buf.Write(p)
	return len(p), nil
}

func TestNewFrameBufferRejectsBadSize(t *testing.T) {
	if _, err := NewFrameBuffer(0, 10, &countingWriter{}); err == nil {
		t.Fatal("expected an error for zero width")
	}
}

func TestFlushSingleCell(t *testing.T) {
	out := &countingWriter{}
	f, err := NewFrameBuffer(20, 10, out)
	if err != nil {
		t.Fatal(err)
	}

	f.Back().Set(4, 2, Pixel{Char: 'x', Color: Green})
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	if out.writes != 1 {
		t.Fatalf("frame took %d writes, want 1", out.writes)
	}
	if got, want := out.buf.String(), "\x1b[3;5H\x1b[32mx"; got != want {
		t.Fatalf("flush wrote %q, want %q", got, want)
	}
}

func TestFlushUnchangedFrameWritesNothing(t *testing.T) {
	out := &countingWriter{}
	f, err := NewFrameBuffer(20, 10, out)
	if err != nil {
		t.Fatal(err)
	}

	f.Back().Set(1, 1, Pixel{Char: '█', Color: Yellow})
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	out.writes, out.buf = 0, strings.Builder{}
	f.Back().Set(1, 1, Pixel{Char: '█', Color: Yellow})
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	if out.writes != 0 {
		t.Fatalf("identical frame still wrote %q", out.buf.String())
	}
}

func TestFlushRunEmitsOneCursorMove(t *testing.T) {
	out := &countingWriter{}
	f, err := NewFrameBuffer(20, 10, out)
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range "abc" {
		f.Back().Set(2+i, 1, Pixel{Char: r, Color: Red})
	}
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	if got, want := out.buf.String(), "\x1b[2;3H\x1b[31mabc"; got != want {
		t.Fatalf("flush wrote %q, want %q", got, want)
	}
}

func TestFlushRepositionsAcrossRows(t *testing.T) {
	out := &countingWriter{}
	f, err := NewFrameBuffer(20, 10, out)
	if err != nil {
		t.Fatal(err)
	}

	f.Back().Set(0, 0, Pixel{Char: 'a', Color: Blue})
	f.Back().Set(0, 5, Pixel{Char: 'b', Color: Blue})
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	if got, want := out.buf.String(), "\x1b[1;1H\x1b[34ma\x1b[6;1Hb"; got != want {
		t.Fatalf("flush wrote %q, want %q", got, want)
	}
}

func TestFlushClearsVacatedCells(t *testing.T) {
	out := &countingWriter{}
	f, err := NewFrameBuffer(20, 10, out)
	if err != nil {
		t.Fatal(err)
	}

	f.Back().Set(3, 3, Pixel{Char: '◉', Color: Blue})
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	// Next frame leaves (3,3) untouched, so the cell reverts to blank
	// and the diff must repaint it as a space.
	out.writes, out.buf = 0, strings.Builder{}
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	if got, want := out.buf.String(), "\x1b[4;4H\x1b[0m "; got != want {
		t.Fatalf("flush wrote %q, want %q", got, want)
	}
}

func TestMatrixBoundsAreSafe(t *testing.T) {
	m := newMatrix(4, 4)
	m.Set(-1, 0, Pixel{Char: 'x'})
	m.Set(0, 99, Pixel{Char: 'x'})

	if p := m.Get(-1, 0); p.Char != blankChar {
		t.Fatalf("out-of-bounds Get = %+v, want blank", p)
	}
}
