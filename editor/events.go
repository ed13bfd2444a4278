package editor

import (
	"github.com/iw2rmb/hed/buffer"
	"github.com/iw2rmb/hed/input"
)

// KeyMsg delivers one decoded terminal key to Update.
type KeyMsg struct {
	Key input.Key
}

type ChangeEvent struct {
	Version  uint64
	Filename string
	Offset   int
	Pane     buffer.Pane
	Modified bool
	Buffers  int
}

func buildChangeEvent(b *buffer.Buffer, n int) ChangeEvent {
	return ChangeEvent{
		Version:  b.Version(),
		Filename: b.Filename(),
		Offset:   b.Cursor(),
		Pane:     b.Pane(),
		Modified: b.Modified(),
		Buffers:  n,
	}
}
