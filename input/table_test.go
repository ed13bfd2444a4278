package input

import "testing"

func TestLookup_EveryTableEntryResolves(t *testing.T) {
	for _, s := range sequences {
		got, ok := Lookup([]byte(s.seq))
		if !ok || got != s.code {
			t.Fatalf("Lookup(%q): got (%v,%v), want (%v,true)", s.seq, got, ok, s.code)
		}
	}
}

func TestLookup_NoDuplicateSequences(t *testing.T) {
	seen := make(map[string]bool, len(sequences))
	for _, s := range sequences {
		if seen[s.seq] {
			t.Fatalf("duplicate sequence %q", s.seq)
		}
		seen[s.seq] = true
	}
}

func TestDecode_FunctionKeys(t *testing.T) {
	cases := []struct {
		seq  string
		want Code
	}{
		{seq: "OP", want: KeyF1},
		{seq: "[[E", want: KeyF5},
		{seq: "[15~", want: KeyF5},
		{seq: "[24~", want: KeyF12},
		{seq: "[25~", want: KeyShiftF1},
		{seq: "[34~", want: KeyShiftF8},
		{seq: "[1;5F", want: KeyCtrlEnd},
	}
	for _, tc := range cases {
		if got := Decode([]byte(tc.seq)).Code; got != tc.want {
			t.Fatalf("Decode(%q): got %v, want %v", tc.seq, got, tc.want)
		}
	}
}

func TestKeyString_MatchesBubbleTeaNames(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{code: Ctrl('x'), want: "ctrl+x"},
		{code: Ctrl('a'), want: "ctrl+a"},
		{code: KeyTab, want: "tab"},
		{code: KeyEnter, want: "enter"},
		{code: KeyPageDown, want: "pgdown"},
		{code: KeyCtrlHome, want: "ctrl+home"},
		{code: Alt('\\'), want: "alt+\\"},
		{code: 'Z', want: "Z"},
		{code: ' ', want: " "},
	}
	for _, tc := range cases {
		if got := tc.code.String(); got != tc.want {
			t.Fatalf("Code(%d).String(): got %q, want %q", int(tc.code), got, tc.want)
		}
	}
}

func TestKey_HexDigit(t *testing.T) {
	for _, c := range "0123456789abcdefABCDEF" {
		if _, ok := (Key{Code: Code(c)}).HexDigit(); !ok {
			t.Fatalf("HexDigit(%q): not recognised", c)
		}
	}
	if v, _ := (Key{Code: 'c'}).HexDigit(); v != 0xc {
		t.Fatalf("HexDigit('c'): got %d, want 12", v)
	}
	for _, c := range "gG x" {
		if _, ok := (Key{Code: Code(c)}).HexDigit(); ok {
			t.Fatalf("HexDigit(%q): unexpectedly recognised", c)
		}
	}
	if _, ok := (Key{Code: Alt('a')}).HexDigit(); ok {
		t.Fatalf("HexDigit(alt+a): unexpectedly recognised")
	}
}
