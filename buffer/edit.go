package buffer

// EnterNibble feeds one hex digit (0..15) at the cursor. The first digit is
// held as the pending high nibble; the second writes the byte, marks the
// buffer modified and advances the cursor. It reports whether a byte was
// written.
func (b *Buffer) EnterNibble(digit byte, rows int) bool {
	if len(b.data) == 0 {
		return false
	}
	digit &= 0x0f

	if !b.nibble.Pending {
		b.nibble = Nibble{Pending: true, High: digit}
		b.version++
		return false
	}

	b.data[b.cursor] = b.nibble.High<<4 | digit
	b.nibble = Nibble{}
	b.modified = true
	b.version++
	b.Move(Move{Unit: MoveByte, Dir: DirRight}, rows)
	return true
}

// AbandonNibble drops a pending high nibble without touching the byte. It
// reports whether anything was pending.
func (b *Buffer) AbandonNibble() bool {
	if !b.nibble.Pending {
		return false
	}
	b.nibble = Nibble{}
	b.version++
	return true
}

// Overwrite replaces the byte at the cursor with c and advances the cursor.
func (b *Buffer) Overwrite(c byte, rows int) bool {
	if len(b.data) == 0 {
		return false
	}
	b.nibble = Nibble{}
	b.data[b.cursor] = c
	b.modified = true
	b.version++
	b.Move(Move{Unit: MoveByte, Dir: DirRight}, rows)
	return true
}
