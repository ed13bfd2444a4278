package buffer

// BytesPerRow is the fixed width of the byte grid.
const BytesPerRow = 16

// RowOf returns the row holding offset pos.
func RowOf(pos int) int { return pos / BytesPerRow }

// LastRow returns the number of rows needed for n bytes (ceil(n/16)).
func LastRow(n int) int {
	return (n + BytesPerRow - 1) / BytesPerRow
}

// Viewport is the window of rows a buffer shows: Rows rows starting at Top.
type Viewport struct {
	Top  int
	Rows int
}

// Viewport returns b's current window for a page of rows rows.
func (b *Buffer) Viewport(rows int) Viewport {
	return Viewport{Top: b.top, Rows: maxInt(rows, 1)}
}

// ContainsRow reports whether row is on screen.
func (v Viewport) ContainsRow(row int) bool {
	return row >= v.Top && row < v.Top+v.Rows
}

// Contains reports whether offset pos is on screen.
func (v Viewport) Contains(pos int) bool {
	return v.ContainsRow(RowOf(pos))
}

// ContainsRun reports whether all of [pos, pos+n) is on screen.
func (v Viewport) ContainsRun(pos, n int) bool {
	if n < 1 {
		n = 1
	}
	return v.Contains(pos) && v.Contains(pos+n-1)
}

// Row returns the bytes of absolute row r; the final row may be short.
func (b *Buffer) Row(r int) []byte {
	start := r * BytesPerRow
	if r < 0 || start >= len(b.data) {
		return nil
	}
	end := start + BytesPerRow
	if end > len(b.data) {
		end = len(b.data)
	}
	return b.data[start:end]
}

// scrollToCursor moves top by the fewest rows that bring the cursor row
// into [top, top+rows).
func (b *Buffer) scrollToCursor(rows int) {
	rows = maxInt(rows, 1)
	row := RowOf(b.cursor)
	if row < b.top {
		b.top = row
	} else if row >= b.top+rows {
		b.top = row - rows + 1
	}
}

// centerTop returns the top row that centers row on a page, never scrolling
// past the last full page.
func centerTop(row, rows, lastRow int) int {
	if row < rows/2 {
		return 0
	}
	top := row - rows/2
	if top+rows > lastRow {
		top = maxInt(lastRow-rows, 0)
	}
	return top
}
