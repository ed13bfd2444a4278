package input

import "fmt"

// Code identifies a logical key.
//
// Values below 256 are the byte read from the terminal (printable ASCII and
// control codes). Named keys live above that range, and Alt combinations set
// altBit over the byte that followed ESC.
type Code int

const (
	KeyNull      Code = 0
	KeyTab       Code = 9
	KeyEnter     Code = 13
	KeyEsc       Code = 27
	KeyBackspace Code = 127
)

const (
	KeyUp Code = iota + 1000
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete

	KeyCtrlUp
	KeyCtrlDown
	KeyCtrlRight
	KeyCtrlLeft
	KeyCtrlHome
	KeyCtrlEnd
	KeyCtrlPageUp
	KeyCtrlPageDown
	KeyCtrlInsert
	KeyCtrlDelete

	KeyShiftUp
	KeyShiftDown
	KeyShiftRight
	KeyShiftLeft
	KeyShiftHome
	KeyShiftEnd
	KeyShiftDelete

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyShiftF1
	KeyShiftF2
	KeyShiftF3
	KeyShiftF4
	KeyShiftF5
	KeyShiftF6
	KeyShiftF7
	KeyShiftF8

	// KeyRedraw is produced when a read was interrupted (window resize).
	KeyRedraw
	// KeyReadError is produced when the source failed; Key.Err holds the cause.
	KeyReadError
	// KeyBadSequence is an escape sequence nothing in the table matched;
	// Key.Seq holds the bytes consumed after ESC.
	KeyBadSequence
)

const altBit Code = 1 << 16

// Ctrl returns the control code for letter (for example Ctrl('x') == 0x18).
func Ctrl(letter byte) Code { return Code(letter & 0x1f) }

// Alt returns the code for Alt+c.
func Alt(c byte) Code { return altBit | Code(c) }

// Key is one decoded key event.
type Key struct {
	Code Code
	Seq  string
	Err  error
}

// IsPrintable reports whether k is a printable ASCII character (32..126).
func (k Key) IsPrintable() bool { return k.Code >= 32 && k.Code < 127 }

// Byte returns the raw byte for printable and control keys.
func (k Key) Byte() (byte, bool) {
	if k.Code < 0 || k.Code > 0xff {
		return 0, false
	}
	return byte(k.Code), true
}

// HexDigit returns the value of a hexadecimal digit key.
func (k Key) HexDigit() (byte, bool) {
	switch c := k.Code; {
	case c >= '0' && c <= '9':
		return byte(c - '0'), true
	case c >= 'a' && c <= 'f':
		return byte(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return byte(c-'A') + 10, true
	}
	return 0, false
}

// AltChar returns the character combined with Alt, if any.
func (k Key) AltChar() (byte, bool) {
	if k.Code&altBit == 0 {
		return 0, false
	}
	return byte(k.Code &^ altBit), true
}

// String names the key the way Bubble Tea names its key messages, so
// bindings from bubbles/key can match decoded keys directly.
func (k Key) String() string { return k.Code.String() }

var namedKeys = map[Code]string{
	KeyNull:      "ctrl+@",
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	28:           "ctrl+\\",
	29:           "ctrl+]",
	30:           "ctrl+^",
	31:           "ctrl+_",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyRight:    "right",
	KeyLeft:     "left",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pgup",
	KeyPageDown: "pgdown",
	KeyInsert:   "insert",
	KeyDelete:   "delete",

	KeyCtrlUp:       "ctrl+up",
	KeyCtrlDown:     "ctrl+down",
	KeyCtrlRight:    "ctrl+right",
	KeyCtrlLeft:     "ctrl+left",
	KeyCtrlHome:     "ctrl+home",
	KeyCtrlEnd:      "ctrl+end",
	KeyCtrlPageUp:   "ctrl+pgup",
	KeyCtrlPageDown: "ctrl+pgdown",
	KeyCtrlInsert:   "ctrl+insert",
	KeyCtrlDelete:   "ctrl+delete",

	KeyShiftUp:     "shift+up",
	KeyShiftDown:   "shift+down",
	KeyShiftRight:  "shift+right",
	KeyShiftLeft:   "shift+left",
	KeyShiftHome:   "shift+home",
	KeyShiftEnd:    "shift+end",
	KeyShiftDelete: "shift+delete",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyShiftF1: "shift+f1",
	KeyShiftF2: "shift+f2",
	KeyShiftF3: "shift+f3",
	KeyShiftF4: "shift+f4",
	KeyShiftF5: "shift+f5",
	KeyShiftF6: "shift+f6",
	KeyShiftF7: "shift+f7",
	KeyShiftF8: "shift+f8",

	KeyRedraw:      "redraw",
	KeyReadError:   "read error",
	KeyBadSequence: "bad sequence",
}

func (c Code) String() string {
	if name, ok := namedKeys[c]; ok {
		return name
	}
	if c&altBit != 0 {
		return "alt+" + Code(c&^altBit).String()
	}
	switch {
	case c > 0 && c < 27:
		return "ctrl+" + string(rune('a'+c-1))
	case c >= 32 && c < 127:
		return string(rune(c))
	}
	return fmt.Sprintf("key(%d)", int(c))
}
