package buffer

type MoveUnit int

const (
	MoveByte MoveUnit = iota
	MoveRow
	MovePage
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // row start (or doc start for MoveDoc)
	DirEnd  // row end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move moves the cursor on a page of rows rows. Byte and row steps scroll
// by the minimum needed; page and document jumps reposition the view.
// Any pending nibble is dropped.
func (b *Buffer) Move(m Move, rows int) {
	rows = maxInt(rows, 1)
	prevCursor, prevTop, prevNibble := b.cursor, b.top, b.nibble
	b.nibble = Nibble{}

	if len(b.data) > 0 {
		switch m.Unit {
		case MoveByte:
			b.moveByte(m.Dir)
			b.scrollToCursor(rows)
		case MoveRow:
			b.moveRow(m.Dir)
			b.scrollToCursor(rows)
		case MovePage:
			b.movePage(m.Dir, rows)
		case MoveDoc:
			b.moveDoc(m.Dir, rows)
		}
	}

	if b.cursor != prevCursor || b.top != prevTop || b.nibble != prevNibble {
		b.version++
	}
}

func (b *Buffer) moveByte(dir MoveDir) {
	switch dir {
	case DirLeft:
		if b.cursor >= 1 {
			b.cursor--
		}
	case DirRight:
		if b.cursor+1 < len(b.data) {
			b.cursor++
		}
	}
}

func (b *Buffer) moveRow(dir MoveDir) {
	switch dir {
	case DirUp:
		if b.cursor >= BytesPerRow {
			b.cursor -= BytesPerRow
		}
	case DirDown:
		if b.cursor+BytesPerRow < len(b.data) {
			b.cursor += BytesPerRow
		}
	case DirHome:
		b.cursor = RowOf(b.cursor) * BytesPerRow
	case DirEnd:
		b.cursor = RowOf(b.cursor)*BytesPerRow + BytesPerRow - 1
		if b.cursor >= len(b.data) {
			b.cursor = len(b.data) - 1
		}
	}
}

// movePage shifts the view by a page keeping the cursor at the same place
// on the page. The first page keeps only the column; the last page sends
// the cursor to the final byte.
func (b *Buffer) movePage(dir MoveDir, rows int) {
	delta := b.cursor - BytesPerRow*b.top
	last := LastRow(len(b.data))

	switch dir {
	case DirUp:
		switch {
		case b.top == 0:
			delta %= BytesPerRow
		case b.top >= rows:
			b.top -= rows
		default:
			b.top = 0
		}
	case DirDown:
		switch {
		case last <= rows || b.top == last-rows:
			if last <= rows {
				b.top = 0
			}
			delta = len(b.data) - BytesPerRow*b.top - 1
		case b.top+2*rows < last:
			b.top += rows
		default:
			b.top = last - rows
		}
	default:
		return
	}

	b.cursor = clampInt(BytesPerRow*b.top+delta, 0, len(b.data)-1)
	b.scrollToCursor(rows)
}

func (b *Buffer) moveDoc(dir MoveDir, rows int) {
	switch dir {
	case DirHome, DirUp:
		b.cursor = 0
		b.top = 0
	case DirEnd, DirDown:
		b.cursor = len(b.data) - 1
		b.top = maxInt(LastRow(len(b.data))-rows, 0)
	}
}

// SetCursor jumps to pos (clamped into the buffer) and makes sure the run of
// trailing bytes starting there is on screen. When it is not, the view is
// re-centered on pos rather than scrolled minimally.
func (b *Buffer) SetCursor(pos, trailing, rows int) {
	rows = maxInt(rows, 1)
	prevCursor, prevTop, prevNibble := b.cursor, b.top, b.nibble
	b.nibble = Nibble{}

	if len(b.data) == 0 {
		b.cursor, b.top = 0, 0
	} else {
		pos = clampInt(pos, 0, len(b.data)-1)
		if pos+trailing > len(b.data) {
			trailing = len(b.data) - pos
		}
		b.cursor = pos
		if !b.Viewport(rows).ContainsRun(pos, trailing) {
			b.top = centerTop(RowOf(pos), rows, LastRow(len(b.data)))
			// A run crossing a row boundary may still end below the page.
			if end := RowOf(pos + maxInt(trailing, 1) - 1); end >= b.top+rows && end-rows+1 <= RowOf(pos) {
				b.top = end - rows + 1
			}
		}
	}

	if b.cursor != prevCursor || b.top != prevTop || b.nibble != prevNibble {
		b.version++
	}
}
