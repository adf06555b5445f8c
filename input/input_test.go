package input

import (
	"io"
	"testing"
)

// scriptReader hands out one keystroke per Read call, the way a raw
// terminal delivers them.
type scriptReader struct {
	keys [][]byte
	pos  int
}

func (s *scriptReader) Read(p []byte) (int, error) {
	if s.pos >= len(s.keys) {
		return 0, io.EOF
	}
	n := copy(p, s.keys[s.pos])
	s.pos++
	return n, nil
}

func TestDecode(t *testing.T) {
	cases := []struct {
		in   []byte
		cmd  Command
		ok   bool
		name string
	}{
		{[]byte{119, 0, 0}, Up, true, "w"},
		{[]byte{100, 0, 0}, Right, true, "d"},
		{[]byte{115, 0, 0}, Down, true, "s"},
		{[]byte{97, 0, 0}, Left, true, "a"},
		{[]byte{27, 91, 65}, Up, true, "arrow up"},
		{[]byte{27, 91, 67}, Right, true, "arrow right"},
		{[]byte{27, 91, 66}, Down, true, "arrow down"},
		{[]byte{27, 91, 68}, Left, true, "arrow left"},
		{[]byte{113, 0, 0}, Quit, true, "q"},
		{[]byte{27, 0, 0}, Quit, true, "esc"},
		{[]byte{3, 0, 0}, Quit, true, "ctrl-c"},
		{[]byte{4, 0, 0}, Quit, true, "ctrl-d"},
		{[]byte{120, 0, 0}, 0, false, "x"},
		{[]byte{32, 0, 0}, 0, false, "space"},
	}

	for _, c := range cases {
		cmd, ok := Decode(c.in)
		if ok != c.ok || (ok && cmd != c.cmd) {
			t.Errorf("%s: Decode(%v) = %v, %v; want %v, %v", c.name, c.in, cmd, ok, c.cmd, c.ok)
		}
	}
}

func TestMailboxEmptyTake(t *testing.T) {
	box := NewMailbox()

	if _, ok := box.Take(); ok {
		t.Fatal("Take on an empty mailbox should report false")
	}
}

func TestMailboxLastWriteWins(t *testing.T) {
	box := NewMailbox()

	box.Put(Up)
	box.Put(Down)

	cmd, ok := box.Take()
	if !ok || cmd != Down {
		t.Fatalf("Take = %v, %v; want Down, true", cmd, ok)
	}
	if _, ok := box.Take(); ok {
		t.Fatal("second Take should find the mailbox empty")
	}
}

func TestReaderStopsOnQuitKey(t *testing.T) {
	in := &scriptReader{keys: [][]byte{{119, 0, 0}, {113, 0, 0}, {115, 0, 0}}}
	box := NewMailbox()
	rd := &Reader{In: in, Box: box}

	rd.Run(nil)

	cmd, ok := box.Take()
	if !ok || cmd != Quit {
		t.Fatalf("pending command = %v, %v; want Quit, true", cmd, ok)
	}
	if in.pos != 2 {
		t.Fatalf("reader consumed %d keystrokes, want 2 (stop right after quit)", in.pos)
	}
}

func TestReaderOverwritesStaleDirections(t *testing.T) {
	in := &scriptReader{keys: [][]byte{{119, 0, 0}, {115, 0, 0}, {113, 0, 0}}}
	box := NewMailbox()
	rd := &Reader{In: in, Box: box}

	rd.Run(nil)

	// Up and Down were both published before any poll; the quit that
	// follows overwrites them. Only the last write survives.
	cmd, ok := box.Take()
	if !ok || cmd != Quit {
		t.Fatalf("pending command = %v, %v; want Quit, true", cmd, ok)
	}
}

func TestReaderQuitsOnReadError(t *testing.T) {
	in := &scriptReader{keys: [][]byte{{120, 0, 0}, {121, 0, 0}}}
	box := NewMailbox()
	rd := &Reader{In: in, Box: box}

	rd.Run(nil)

	// Unknown bytes publish nothing; the EOF afterwards publishes a
	// quit so the game loop still winds down.
	cmd, ok := box.Take()
	if !ok || cmd != Quit {
		t.Fatalf("pending command = %v, %v; want Quit, true", cmd, ok)
	}
}
