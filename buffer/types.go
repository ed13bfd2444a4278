package buffer

// Pane selects which half of the split view receives keystrokes.
type Pane int

const (
	PaneHex Pane = iota
	PaneText
)

func (p Pane) String() string {
	if p == PaneText {
		return "text"
	}
	return "hex"
}

// Toggle returns the other pane.
func (p Pane) Toggle() Pane {
	if p == PaneHex {
		return PaneText
	}
	return PaneHex
}

// Nibble is the hex-entry state machine. The zero value is Idle; after the
// first digit it holds the pending high nibble until the second digit
// commits the byte or another key abandons it.
type Nibble struct {
	Pending bool
	High    byte
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
