package buffer

import (
	"encoding/binary"
	"math"
)

// Uint decodes width bytes (1, 2, 4 or 8) at pos as an unsigned integer.
// ok is false when fewer than width bytes remain.
func (b *Buffer) Uint(pos, width int, order binary.ByteOrder) (uint64, bool) {
	if pos < 0 || pos+width > len(b.data) {
		return 0, false
	}
	p := b.data[pos : pos+width]
	switch width {
	case 1:
		return uint64(p[0]), true
	case 2:
		return uint64(order.Uint16(p)), true
	case 4:
		return uint64(order.Uint32(p)), true
	case 8:
		return order.Uint64(p), true
	}
	return 0, false
}

// Int decodes width bytes at pos as a two's complement signed integer.
func (b *Buffer) Int(pos, width int, order binary.ByteOrder) (int64, bool) {
	u, ok := b.Uint(pos, width, order)
	if !ok {
		return 0, false
	}
	switch width {
	case 1:
		return int64(int8(u)), true
	case 2:
		return int64(int16(u)), true
	case 4:
		return int64(int32(u)), true
	}
	return int64(u), true
}

func (b *Buffer) Float32(pos int, order binary.ByteOrder) (float32, bool) {
	u, ok := b.Uint(pos, 4, order)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(uint32(u)), true
}

func (b *Buffer) Float64(pos int, order binary.ByteOrder) (float64, bool) {
	u, ok := b.Uint(pos, 8, order)
	if !ok {
		return 0, false
	}
	return math.Float64frombits(u), true
}
