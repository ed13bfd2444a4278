package input

import "errors"

// ErrInterrupted is returned by a Source when an out-of-band event (a window
// resize) should wake the reader before a key arrives.
var ErrInterrupted = errors.New("input: read interrupted")

// MaxSequenceLen bounds the bytes collected after ESC.
const MaxSequenceLen = 64

// Source yields raw terminal bytes.
type Source interface {
	// Next returns the next byte. ok is false when the per-byte timeout
	// elapsed without data.
	Next() (b byte, ok bool, err error)
}

// Decoder turns a Source into key events.
type Decoder struct {
	src     Source
	seq     [MaxSequenceLen]byte
	pending error
}

func NewDecoder(src Source) *Decoder {
	return &Decoder{src: src}
}

// ReadKey blocks until one key event is available.
//
// An interrupted read yields KeyRedraw with a nil error. A failing source
// yields KeyReadError and the error.
func (d *Decoder) ReadKey() (Key, error) {
	if err := d.pending; err != nil {
		d.pending = nil
		return errorKey(err)
	}

	var c byte
	for {
		b, ok, err := d.src.Next()
		if err != nil {
			return errorKey(err)
		}
		if ok {
			c = b
			break
		}
	}

	if c != byte(KeyEsc) {
		return Key{Code: Code(c)}, nil
	}
	return d.readEscape(), nil
}

func errorKey(err error) (Key, error) {
	if errors.Is(err, ErrInterrupted) {
		return Key{Code: KeyRedraw}, nil
	}
	return Key{Code: KeyReadError, Err: err}, err
}

// readEscape scans the bytes after ESC. The first byte is taken as is; from
// the second on, a letter, '~' or '^' ends the sequence and ';' always
// consumes the parameter byte after it.
func (d *Decoder) readEscape() Key {
	n := 0
	next := func() bool {
		if n >= len(d.seq) {
			return false
		}
		b, ok, err := d.src.Next()
		if err != nil {
			// Report the failure on the following ReadKey so this
			// sequence still resolves.
			d.pending = err
			return false
		}
		if !ok {
			return false
		}
		d.seq[n] = b
		n++
		return true
	}

	if !next() {
		return Key{Code: KeyEsc}
	}
	for next() {
		c := d.seq[n-1]
		if isTerminator(c) {
			break
		}
		if c == ';' && !next() {
			break
		}
	}
	return Decode(d.seq[:n])
}
