package document

import "github.com/iw2rmb/hed/buffer"

// ID names a buffer slot in a Ring. IDs stay valid until the buffer is
// closed; a freed ID may be reused by a later Add.
type ID int

// None is returned where no buffer is addressed.
const None ID = -1

type slot struct {
	buf  *buffer.Buffer
	next ID
	prev ID
}

// Ring is a circular doubly linked list of buffers stored in an arena.
type Ring struct {
	slots   []slot
	free    []ID
	current ID
	n       int
}

// NewRing returns a ring holding only first.
func NewRing(first *buffer.Buffer) *Ring {
	r := &Ring{current: None}
	r.Add(first)
	return r
}

func (r *Ring) alloc(b *buffer.Buffer) ID {
	if n := len(r.free); n > 0 {
		id := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[id] = slot{buf: b}
		return id
	}
	r.slots = append(r.slots, slot{buf: b})
	return ID(len(r.slots) - 1)
}

// Add inserts b just before the current buffer and returns its ID. The
// current buffer does not change. When the only buffer is a placeholder it
// is replaced by b in place.
func (r *Ring) Add(b *buffer.Buffer) ID {
	if r.n == 0 {
		id := r.alloc(b)
		r.slots[id].next, r.slots[id].prev = id, id
		r.current = id
		r.n = 1
		return id
	}
	if r.n == 1 && r.slots[r.current].buf.IsPlaceholder() {
		r.slots[r.current].buf = b
		return r.current
	}

	id := r.alloc(b)
	cur := r.current
	prev := r.slots[cur].prev
	r.slots[id].next = cur
	r.slots[id].prev = prev
	r.slots[prev].next = id
	r.slots[cur].prev = id
	r.n++
	return id
}

// SetCurrent makes id the current buffer. It reports false for an unknown
// or freed id.
func (r *Ring) SetCurrent(id ID) bool {
	if !r.valid(id) {
		return false
	}
	r.current = id
	return true
}

func (r *Ring) valid(id ID) bool {
	return id >= 0 && int(id) < len(r.slots) && r.slots[id].buf != nil
}

// Close removes the current buffer; its successor becomes current. It
// reports true when the ring is now empty.
func (r *Ring) Close() (empty bool) {
	if r.n == 0 {
		return true
	}
	id := r.current
	s := r.slots[id]
	r.slots[id] = slot{}
	r.free = append(r.free, id)
	r.n--

	if r.n == 0 {
		r.current = None
		return true
	}
	r.slots[s.prev].next = s.next
	r.slots[s.next].prev = s.prev
	r.current = s.next
	return false
}

// Next makes the successor current.
func (r *Ring) Next() {
	if r.n > 0 {
		r.current = r.slots[r.current].next
	}
}

// Prev makes the predecessor current.
func (r *Ring) Prev() {
	if r.n > 0 {
		r.current = r.slots[r.current].prev
	}
}

func (r *Ring) Len() int { return r.n }

// Current returns the current buffer, or nil once the ring is empty.
func (r *Ring) Current() *buffer.Buffer {
	if r.n == 0 {
		return nil
	}
	return r.slots[r.current].buf
}

// CurrentID returns the ID of the current buffer, or None.
func (r *Ring) CurrentID() ID { return r.current }

// Get returns the buffer stored under id.
func (r *Ring) Get(id ID) (*buffer.Buffer, bool) {
	if !r.valid(id) {
		return nil, false
	}
	return r.slots[id].buf, true
}

// Buffers lists the ring starting at the current buffer and following next.
func (r *Ring) Buffers() []*buffer.Buffer {
	out := make([]*buffer.Buffer, 0, r.n)
	if r.n == 0 {
		return out
	}
	id := r.current
	for i := 0; i < r.n; i++ {
		out = append(out, r.slots[id].buf)
		id = r.slots[id].next
	}
	return out
}
