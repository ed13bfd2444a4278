package buffer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var (
	ErrOpen      = errors.New("can't open file")
	ErrSize      = errors.New("can't determine file size")
	ErrTooLarge  = errors.New("file is too large")
	ErrShortRead = errors.New("error reading file")
	ErrWrite     = errors.New("can't write file")
)

// stdinChunk is the initial capacity used when reading an unsized stream.
const stdinChunk = 16 * 1024

// Load reads the whole named file into a new buffer named after it.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrOpen, path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrSize, path, err)
	}
	size := st.Size()
	if size < 0 || uint64(size) > math.MaxInt {
		return nil, fmt.Errorf("%w: '%s' is %d bytes", ErrTooLarge, path, size)
	}

	data := make([]byte, int(size))
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrShortRead, path, err)
	}

	return &Buffer{data: data, filename: path}, nil
}

// ReadFrom reads r until EOF into a new unnamed buffer, doubling its
// capacity as needed. The result counts as modified since nothing on disk
// holds it yet.
func ReadFrom(r io.Reader) (*Buffer, error) {
	data := make([]byte, 0, stdinChunk)
	for {
		if len(data) == cap(data) {
			grown := make([]byte, len(data), 2*cap(data))
			copy(grown, data)
			data = grown
		}
		n, err := r.Read(data[len(data):cap(data)])
		data = data[:len(data)+n]
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrShortRead, err)
		}
	}
	return FromData(data), nil
}

// WriteFile writes the whole buffer to path, creating or truncating it. On
// success the buffer adopts path as its name and is no longer modified; on
// failure nothing changes.
func (b *Buffer) WriteFile(path string) error {
	if err := os.WriteFile(path, b.data, 0o644); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrWrite, path, err)
	}
	b.modified = false
	b.filename = path
	b.version++
	return nil
}
