package buffer

// Buffer is one open document: bytes plus cursor, scroll and edit state.
type Buffer struct {
	data     []byte
	filename string
	modified bool
	version  uint64

	cursor int
	top    int
	pane   Pane
	nibble Nibble
}

// New returns an empty, unnamed, unmodified buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromData wraps data supplied in memory (for example from stdin). Such a
// buffer has no file behind it, so non-empty data starts out modified.
func FromData(data []byte) *Buffer {
	return &Buffer{
		data:     data,
		modified: len(data) > 0,
	}
}

func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer contents. Callers must not modify the slice.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Filename() string { return b.filename }

func (b *Buffer) Modified() bool { return b.modified }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

// TopLine is the row index rendered first; its offset is TopLine()*BytesPerRow.
func (b *Buffer) TopLine() int { return b.top }

func (b *Buffer) Pane() Pane { return b.pane }

func (b *Buffer) Nibble() Nibble { return b.nibble }

// IsPlaceholder reports whether b is the blank buffer a session starts with
// when no file was given.
func (b *Buffer) IsPlaceholder() bool {
	return len(b.data) == 0 && b.filename == "" && !b.modified
}

// ByteAt returns the stored byte at pos.
func (b *Buffer) ByteAt(pos int) (byte, bool) {
	if pos < 0 || pos >= len(b.data) {
		return 0, false
	}
	return b.data[pos], true
}

// DisplayByte returns the byte at pos as it should be shown: at the cursor,
// a pending high nibble replaces the stored one.
func (b *Buffer) DisplayByte(pos int) (byte, bool) {
	v, ok := b.ByteAt(pos)
	if !ok {
		return 0, false
	}
	if pos == b.cursor && b.nibble.Pending {
		v = v&0x0f | b.nibble.High<<4
	}
	return v, true
}

// SetPane switches the active pane and drops any pending nibble.
func (b *Buffer) SetPane(p Pane) {
	if b.pane == p && !b.nibble.Pending {
		return
	}
	b.pane = p
	b.nibble = Nibble{}
	b.version++
}

// TogglePane switches between the hex and text panes.
func (b *Buffer) TogglePane() {
	b.SetPane(b.pane.Toggle())
}

// SetFilename renames the buffer without touching its contents.
func (b *Buffer) SetFilename(name string) {
	if b.filename == name {
		return
	}
	b.filename = name
	b.version++
}
