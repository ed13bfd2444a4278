package editor

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/hed/buffer"
	"github.com/iw2rmb/hed/input"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func seqBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

// newSized builds a model over bufs with an 80x(rows+BorderLines) window.
func newSized(cfg Config, rows int, bufs ...*buffer.Buffer) Model {
	m := New(cfg, bufs...)
	return m.SetSize(80, rows+BorderLines)
}

func press(m Model, codes ...input.Code) Model {
	for _, c := range codes {
		m, _ = m.Update(KeyMsg{Key: input.Key{Code: c}})
	}
	return m
}

func typeText(m Model, s string) Model {
	for i := 0; i < len(s); i++ {
		m, _ = m.Update(KeyMsg{Key: input.Key{Code: input.Code(s[i])}})
	}
	return m
}
