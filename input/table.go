package input

// sequences lists the escape sequences hed understands, keyed by the bytes
// that follow ESC. New terminal variants are added here; the scanner in
// Decoder does not change.
var sequences = []struct {
	seq  string
	code Code
}{
	// CSI cursor keys.
	{"[A", KeyUp},
	{"[B", KeyDown},
	{"[C", KeyRight},
	{"[D", KeyLeft},
	{"[H", KeyHome},
	{"[F", KeyEnd},

	// SS3 (application cursor mode, xterm F1-F4).
	{"OA", KeyUp},
	{"OB", KeyDown},
	{"OC", KeyRight},
	{"OD", KeyLeft},
	{"OH", KeyHome},
	{"OF", KeyEnd},
	{"OP", KeyF1},
	{"OQ", KeyF2},
	{"OR", KeyF3},
	{"OS", KeyF4},

	// VT220 editing keys.
	{"[1~", KeyHome},
	{"[2~", KeyInsert},
	{"[3~", KeyDelete},
	{"[4~", KeyEnd},
	{"[5~", KeyPageUp},
	{"[6~", KeyPageDown},
	{"[7~", KeyHome},
	{"[8~", KeyEnd},

	// rxvt Ctrl-modified editing keys.
	{"[1^", KeyCtrlHome},
	{"[2^", KeyCtrlInsert},
	{"[3^", KeyCtrlDelete},
	{"[4^", KeyCtrlEnd},
	{"[5^", KeyCtrlPageUp},
	{"[6^", KeyCtrlPageDown},
	{"[7^", KeyCtrlHome},
	{"[8^", KeyCtrlEnd},

	// xterm modifier parameters: 2 is Shift, 5 is Ctrl.
	{"[1;5H", KeyCtrlHome},
	{"[1;5F", KeyCtrlEnd},
	{"[1;5A", KeyCtrlUp},
	{"[1;5B", KeyCtrlDown},
	{"[1;5C", KeyCtrlRight},
	{"[1;5D", KeyCtrlLeft},
	{"[5;5~", KeyCtrlPageUp},
	{"[6;5~", KeyCtrlPageDown},
	{"[2;5~", KeyCtrlInsert},
	{"[3;5~", KeyCtrlDelete},
	{"[1;2A", KeyShiftUp},
	{"[1;2B", KeyShiftDown},
	{"[1;2C", KeyShiftRight},
	{"[1;2D", KeyShiftLeft},
	{"[1;2H", KeyShiftHome},
	{"[1;2F", KeyShiftEnd},
	{"[3;2~", KeyShiftDelete},

	// Linux console function keys.
	{"[[A", KeyF1},
	{"[[B", KeyF2},
	{"[[C", KeyF3},
	{"[[D", KeyF4},
	{"[[E", KeyF5},

	// VT220 function keys.
	{"[11~", KeyF1},
	{"[12~", KeyF2},
	{"[13~", KeyF3},
	{"[14~", KeyF4},
	{"[15~", KeyF5},
	{"[17~", KeyF6},
	{"[18~", KeyF7},
	{"[19~", KeyF8},
	{"[20~", KeyF9},
	{"[21~", KeyF10},
	{"[23~", KeyF11},
	{"[24~", KeyF12},
	{"[25~", KeyShiftF1},
	{"[26~", KeyShiftF2},
	{"[28~", KeyShiftF3},
	{"[29~", KeyShiftF4},
	{"[31~", KeyShiftF5},
	{"[32~", KeyShiftF6},
	{"[33~", KeyShiftF7},
	{"[34~", KeyShiftF8},
}

var sequenceIndex = func() map[string]Code {
	idx := make(map[string]Code, len(sequences))
	for _, s := range sequences {
		idx[s.seq] = s.code
	}
	return idx
}()

// Lookup returns the named key for seq, the bytes that followed ESC.
func Lookup(seq []byte) (Code, bool) {
	c, ok := sequenceIndex[string(seq)]
	return c, ok
}

// Decode maps the bytes collected after ESC to a key.
//
// A single collected byte is an Alt combination, except '[' which only ever
// starts a CSI sequence. Anything the table does not know is reported as
// KeyBadSequence carrying the literal bytes.
func Decode(seq []byte) Key {
	if len(seq) == 1 {
		c := seq[0]
		if c >= 32 && c < 127 && c != '[' {
			return Key{Code: Alt(c)}
		}
	}
	if c, ok := Lookup(seq); ok {
		return Key{Code: c}
	}
	return Key{Code: KeyBadSequence, Seq: string(seq)}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isTerminator(c byte) bool {
	return c == '~' || c == '^' || isLetter(c)
}
