package buffer

import (
	"math/rand"
	"testing"
)

func TestBuffer_MoveByte_BoundsAndScroll(t *testing.T) {
	b := FromData(seq(40))

	b.Move(Move{Unit: MoveByte, Dir: DirLeft}, 2)
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	for i := 0; i < 32; i++ {
		b.Move(Move{Unit: MoveByte, Dir: DirRight}, 2)
	}
	if got, top := b.Cursor(), b.TopLine(); got != 32 || top != 1 {
		t.Fatalf("cursor=%d top=%d, want 32,1", got, top)
	}

	for i := 0; i < 20; i++ {
		b.Move(Move{Unit: MoveByte, Dir: DirRight}, 2)
	}
	if got := b.Cursor(); got != 39 {
		t.Fatalf("cursor=%d, want clamped 39", got)
	}
}

func TestBuffer_MoveRow_UpDownOnlyWhenDestinationExists(t *testing.T) {
	b := FromData(seq(40))
	b.SetCursor(30, 1, 10)

	b.Move(Move{Unit: MoveRow, Dir: DirDown}, 10)
	if got := b.Cursor(); got != 30 {
		t.Fatalf("cursor=%d, want 30 (no byte at 46)", got)
	}

	b.Move(Move{Unit: MoveRow, Dir: DirUp}, 10)
	b.Move(Move{Unit: MoveRow, Dir: DirUp}, 10)
	if got := b.Cursor(); got != 14 {
		t.Fatalf("cursor=%d, want 14", got)
	}
}

func TestBuffer_MoveRow_HomeEnd(t *testing.T) {
	b := FromData(seq(40))
	b.SetCursor(20, 1, 10)

	b.Move(Move{Unit: MoveRow, Dir: DirHome}, 10)
	if got := b.Cursor(); got != 16 {
		t.Fatalf("home cursor=%d, want 16", got)
	}
	b.Move(Move{Unit: MoveRow, Dir: DirEnd}, 10)
	if got := b.Cursor(); got != 31 {
		t.Fatalf("end cursor=%d, want 31", got)
	}

	b.SetCursor(33, 1, 10)
	b.Move(Move{Unit: MoveRow, Dir: DirEnd}, 10)
	if got := b.Cursor(); got != 39 {
		t.Fatalf("end on partial row cursor=%d, want 39", got)
	}
}

func TestBuffer_MovePage(t *testing.T) {
	// 20 rows, 5 per page.
	b := FromData(seq(320))
	b.SetCursor(3, 1, 5)

	b.Move(Move{Unit: MovePage, Dir: DirDown}, 5)
	if got, top := b.Cursor(), b.TopLine(); got != 83 || top != 5 {
		t.Fatalf("page down: cursor=%d top=%d, want 83,5", got, top)
	}

	b.Move(Move{Unit: MovePage, Dir: DirUp}, 5)
	if got, top := b.Cursor(), b.TopLine(); got != 3 || top != 0 {
		t.Fatalf("page up: cursor=%d top=%d, want 3,0", got, top)
	}

	// On the first page, page up keeps only the column.
	b.Move(Move{Unit: MoveRow, Dir: DirDown}, 5)
	b.Move(Move{Unit: MoveRow, Dir: DirDown}, 5)
	b.Move(Move{Unit: MovePage, Dir: DirUp}, 5)
	if got := b.Cursor(); got != 3 {
		t.Fatalf("page up at top: cursor=%d, want 3", got)
	}

	// Walking down ends on the last page, then on the last byte.
	for i := 0; i < 10; i++ {
		b.Move(Move{Unit: MovePage, Dir: DirDown}, 5)
	}
	if got, top := b.Cursor(), b.TopLine(); got != 319 || top != 15 {
		t.Fatalf("page down at end: cursor=%d top=%d, want 319,15", got, top)
	}
}

func TestBuffer_MovePage_PartialLastRowClamps(t *testing.T) {
	b := FromData(seq(100)) // 7 rows, last one short
	b.SetCursor(15, 1, 3)
	b.Move(Move{Unit: MovePage, Dir: DirDown}, 3)
	b.Move(Move{Unit: MovePage, Dir: DirDown}, 3)
	if got := b.Cursor(); got >= b.Len() {
		t.Fatalf("cursor=%d past end %d", got, b.Len())
	}
	if top := b.TopLine(); top != 4 {
		t.Fatalf("top=%d, want 4", top)
	}
}

func TestBuffer_MoveDoc_StartEnd(t *testing.T) {
	b := FromData(seq(100))

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd}, 3)
	if got, top := b.Cursor(), b.TopLine(); got != 99 || top != 4 {
		t.Fatalf("end: cursor=%d top=%d, want 99,4", got, top)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirHome}, 3)
	if got, top := b.Cursor(), b.TopLine(); got != 0 || top != 0 {
		t.Fatalf("start: cursor=%d top=%d, want 0,0", got, top)
	}

	small := FromData(seq(10))
	small.Move(Move{Unit: MoveDoc, Dir: DirEnd}, 3)
	if got, top := small.Cursor(), small.TopLine(); got != 9 || top != 0 {
		t.Fatalf("end of short buffer: cursor=%d top=%d, want 9,0", got, top)
	}
}

func TestBuffer_MoveOnEmptyBufferIsNoop(t *testing.T) {
	b := New()
	for _, m := range []Move{
		{Unit: MoveByte, Dir: DirRight},
		{Unit: MoveRow, Dir: DirEnd},
		{Unit: MovePage, Dir: DirDown},
		{Unit: MoveDoc, Dir: DirEnd},
	} {
		b.Move(m, 4)
		if b.Cursor() != 0 || b.TopLine() != 0 {
			t.Fatalf("move %+v on empty buffer: cursor=%d top=%d", m, b.Cursor(), b.TopLine())
		}
	}
}

func TestBuffer_SingleStepsKeepCursorVisible(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	moves := []Move{
		{Unit: MoveByte, Dir: DirLeft},
		{Unit: MoveByte, Dir: DirRight},
		{Unit: MoveRow, Dir: DirUp},
		{Unit: MoveRow, Dir: DirDown},
	}

	for _, size := range []int{1, 15, 16, 17, 200, 1000} {
		for _, rows := range []int{1, 3, 8} {
			b := FromData(seq(size))
			for i := 0; i < 2000; i++ {
				b.Move(moves[rng.Intn(len(moves))], rows)
				if c := b.Cursor(); c < 0 || c > size-1 {
					t.Fatalf("size=%d rows=%d: cursor=%d out of range", size, rows, c)
				}
				if !b.Viewport(rows).Contains(b.Cursor()) {
					t.Fatalf("size=%d rows=%d: cursor row %d outside [%d,%d)", size, rows, RowOf(b.Cursor()), b.TopLine(), b.TopLine()+rows)
				}
			}
		}
	}
}

func TestBuffer_SetCursor_CentersWhenOffscreen(t *testing.T) {
	b := FromData(seq(1600)) // 100 rows

	b.SetCursor(800, 16, 10)
	if got, top := b.Cursor(), b.TopLine(); got != 800 || top != 45 {
		t.Fatalf("cursor=%d top=%d, want 800,45", got, top)
	}

	// Already visible: no scroll.
	b.SetCursor(820, 4, 10)
	if top := b.TopLine(); top != 45 {
		t.Fatalf("top=%d, want unchanged 45", top)
	}

	// Near the end the view stops at the last full page.
	b.SetCursor(1590, 16, 10)
	if top := b.TopLine(); top != 90 {
		t.Fatalf("top=%d, want 90", top)
	}

	// Out of range clamps to the last byte.
	b.SetCursor(1<<30, 16, 10)
	if got := b.Cursor(); got != 1599 {
		t.Fatalf("cursor=%d, want 1599", got)
	}
}

func TestBuffer_SetCursor_RunAlwaysVisible(t *testing.T) {
	b := FromData(seq(5000))
	for _, rows := range []int{2, 5, 21} {
		for pos := 0; pos < 5000; pos += 37 {
			for _, k := range []int{1, 4, 16} {
				b.SetCursor(pos, k, rows)
				end := pos + k
				if end > b.Len() {
					end = b.Len()
				}
				if !b.Viewport(rows).ContainsRun(pos, end-pos) {
					t.Fatalf("rows=%d pos=%d k=%d: run not visible (top=%d)", rows, pos, k, b.TopLine())
				}
			}
		}
	}
}
