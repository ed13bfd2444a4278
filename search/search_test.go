package search

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/hed/buffer"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		in      string
		want    []byte
		wantErr bool
	}{
		{in: "4F 00,1a", want: []byte{0x4f, 0x00, 0x1a}},
		{in: "deadBEEF", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{in: "d e\ta d", want: []byte{0xde, 0xad}},
		{in: "4F0", wantErr: true},
		{in: "4G", wantErr: true},
		{in: "", wantErr: true},
		{in: " , ", wantErr: true},
	}

	for _, tc := range tests {
		got, err := DecodeHex(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrBadPattern) {
				t.Fatalf("DecodeHex(%q): err=%v, want ErrBadPattern", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("DecodeHex(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("DecodeHex(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestPattern_ByPane(t *testing.T) {
	got, err := Pattern(buffer.PaneText, "4F")
	if err != nil || string(got) != "4F" {
		t.Fatalf("text pane: got %q,%v want \"4F\"", got, err)
	}
	got, err = Pattern(buffer.PaneHex, "4F")
	if err != nil || len(got) != 1 || got[0] != 0x4f {
		t.Fatalf("hex pane: got % x,%v want 4f", got, err)
	}
	if _, err := Pattern(buffer.PaneText, ""); !errors.Is(err, ErrBadPattern) {
		t.Fatalf("empty text: err=%v, want ErrBadPattern", err)
	}
}

func TestForward_StepsThroughMatches(t *testing.T) {
	b := buffer.FromData([]byte{0x10, 0x20, 0x30, 0x20, 0x10})
	pat := []byte{0x20}

	if pos, err := Forward(b, pat, 4); err != nil || pos != 1 {
		t.Fatalf("first: got %d,%v want 1", pos, err)
	}
	if pos, err := Forward(b, pat, 4); err != nil || pos != 3 {
		t.Fatalf("second: got %d,%v want 3", pos, err)
	}
	if _, err := Forward(b, pat, 4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("third: err=%v, want ErrNotFound", err)
	}
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor after miss=%d, want 3", got)
	}
}

func TestForward_MatchEndingAtLastByte(t *testing.T) {
	b := buffer.FromData([]byte("xxabc"))
	if pos, err := Forward(b, []byte("abc"), 4); err != nil || pos != 2 {
		t.Fatalf("got %d,%v want 2", pos, err)
	}
}

func TestForward_NoMatchAtCursor(t *testing.T) {
	b := buffer.FromData([]byte("aaa"))
	if pos, err := Forward(b, []byte("aa"), 4); err != nil || pos != 1 {
		t.Fatalf("got %d,%v want 1", pos, err)
	}
	if _, err := Forward(b, []byte("aa"), 4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestForward_BringsMatchOnScreen(t *testing.T) {
	data := make([]byte, 16*100)
	copy(data[16*60+14:], "needle")
	b := buffer.FromData(data)

	pos, err := Forward(b, []byte("needle"), 5)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if !b.Viewport(5).ContainsRun(pos, 6) {
		t.Fatalf("match at %d not fully visible (top=%d)", pos, b.TopLine())
	}
}
