package editor

import (
	"encoding/binary"
	"fmt"

	"github.com/iw2rmb/hed/buffer"
)

// inspectorLines is the height of the data inspector panel.
const inspectorLines = 3

const notEnough = "not enough data"

func (m Model) byteOrder() binary.ByteOrder {
	if m.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func orderName(o binary.ByteOrder) string {
	if o == binary.ByteOrder(binary.BigEndian) {
		return "big endian"
	}
	return "little endian"
}

// inspect decodes the bytes at the cursor, one line per integer width
// group.
func inspect(b *buffer.Buffer, order binary.ByteOrder) []string {
	pos := b.Cursor()
	ints := func(width int) string {
		u, ok := b.Uint(pos, width, order)
		if !ok {
			return fmt.Sprintf("u%d/i%d: %s", 8*width, 8*width, notEnough)
		}
		i, _ := b.Int(pos, width, order)
		return fmt.Sprintf("u%d: %d  i%d: %d", 8*width, u, 8*width, i)
	}
	f32 := notEnough
	if v, ok := b.Float32(pos, order); ok {
		f32 = fmt.Sprintf("%g", v)
	}
	f64 := notEnough
	if v, ok := b.Float64(pos, order); ok {
		f64 = fmt.Sprintf("%g", v)
	}

	return []string{
		fmt.Sprintf(" %s   %s", ints(1), ints(2)),
		fmt.Sprintf(" %s   f32: %s", ints(4), f32),
		fmt.Sprintf(" %s   f64: %s   (%s)", ints(8), f64, orderName(order)),
	}
}
