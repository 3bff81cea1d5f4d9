package x11clipboard

import (
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

func TestAtomListBytes(t *testing.T) {
	buf := atomListBytes(1, 2, 3)
	if len(buf) != 12 {
		t.Fatalf("len(buf) = %d, want 12", len(buf))
	}
	for i, want := range []uint32{1, 2, 3} {
		if got := xgb.Get32(buf[i*4:]); got != want {
			t.Errorf("atom %d = %d, want %d", i, got, want)
		}
	}
}

func TestAtomListBytesEmpty(t *testing.T) {
	if buf := atomListBytes(); len(buf) != 0 {
		t.Fatalf("atomListBytes() = %v, want empty", buf)
	}
}

// chunkLen mirrors the remaining/min(incrChunkSize, remaining) arithmetic
// handlePropertyNotify performs inline, so the boundary cases (exact
// multiple, final short chunk, already-exhausted) are covered without
// needing a live X11 connection.
func chunkLen(valueLen, pos int) int {
	remaining := valueLen - pos
	n := incrChunkSize
	if remaining < n {
		n = remaining
	}
	if n < 0 {
		n = 0
	}
	return n
}

func TestIncrChunkMath(t *testing.T) {
	cases := []struct {
		name     string
		valueLen int
		pos      int
		want     int
	}{
		{"first chunk of large value", incrChunkSize*2 + 100, 0, incrChunkSize},
		{"middle chunk", incrChunkSize*2 + 100, incrChunkSize, incrChunkSize},
		{"final short chunk", incrChunkSize*2 + 100, incrChunkSize * 2, 100},
		{"exact multiple terminates with zero", incrChunkSize * 2, incrChunkSize * 2, 0},
		{"already exhausted", 10, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := chunkLen(tc.valueLen, tc.pos); got != tc.want {
				t.Errorf("chunkLen(%d, %d) = %d, want %d", tc.valueLen, tc.pos, got, tc.want)
			}
		})
	}
}

func TestIncrStateZeroValue(t *testing.T) {
	var s incrState
	if s.pos != 0 {
		t.Errorf("zero-value incrState.pos = %d, want 0", s.pos)
	}
	s.selection = xproto.Atom(1)
	s.requestor = xproto.Window(2)
	s.property = xproto.Atom(3)
	if s.selection != 1 || s.requestor != 2 || s.property != 3 {
		t.Errorf("incrState fields not settable as expected: %+v", s)
	}
}
