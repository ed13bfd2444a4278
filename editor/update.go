package editor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hed/buffer"
	"github.com/iw2rmb/hed/input"
	"github.com/iw2rmb/hed/internal/grapheme"
	"github.com/iw2rmb/hed/internal/logger"
	"github.com/iw2rmb/hed/search"
)

// promptLabelMax bounds the search prompt label including the recalled
// pattern.
const promptLabelMax = 40

func (m Model) updateKey(k input.Key) (Model, tea.Cmd) {
	if m.quitting || m.ring.Len() == 0 {
		return m, nil
	}
	if k.Code == input.KeyRedraw {
		return m, tea.ClearScreen
	}
	if m.helpOpen {
		return m.updateHelp(k)
	}
	if m.prompt.active {
		cmd := (&m).updatePrompt(k)
		m.keepCursorVisible()
		return m, cmd
	}

	m.msgSet = false
	cmd := (&m).dispatch(k)
	if !m.msgSet {
		m.msg = ""
	}
	m.keepCursorVisible()
	return m, cmd
}

func (m *Model) dispatch(k input.Key) tea.Cmd {
	km := m.cfg.KeyMap
	b := m.ring.Current()
	rows := m.Rows()
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir) {
		b.Move(buffer.Move{Unit: unit, Dir: dir}, rows)
	}

	var cmd tea.Cmd
	nibbleKept := false

	switch {
	case k.Code == input.KeyBadSequence:
		m.setMsg("Unknown key: <ESC>%s", k.Seq)
	case k.Code == input.KeyReadError:
		m.setError(fmt.Errorf("reading terminal: %w", k.Err))

	case key.Matches(k, km.Close):
		cmd = m.closeCurrent()
	case key.Matches(k, km.Write):
		if b.Len() == 0 {
			m.setMsg("No data to write!")
		} else {
			m.promptWrite(nil)
		}
	case key.Matches(k, km.Read):
		m.promptRead()
	case key.Matches(k, km.NextBuffer):
		m.ring.Next()
	case key.Matches(k, km.PrevBuffer):
		m.ring.Prev()
	case key.Matches(k, km.Help):
		m.openHelp()
	case key.Matches(k, km.Redraw):
		cmd = tea.ClearScreen

	case key.Matches(k, km.Left):
		move(buffer.MoveByte, buffer.DirLeft)
	case key.Matches(k, km.Right):
		move(buffer.MoveByte, buffer.DirRight)
	case key.Matches(k, km.Up):
		move(buffer.MoveRow, buffer.DirUp)
	case key.Matches(k, km.Down):
		move(buffer.MoveRow, buffer.DirDown)
	case key.Matches(k, km.Home):
		move(buffer.MoveRow, buffer.DirHome)
	case key.Matches(k, km.End):
		move(buffer.MoveRow, buffer.DirEnd)
	case key.Matches(k, km.PageUp):
		move(buffer.MovePage, buffer.DirUp)
	case key.Matches(k, km.PageDown):
		move(buffer.MovePage, buffer.DirDown)
	case key.Matches(k, km.FileStart):
		move(buffer.MoveDoc, buffer.DirHome)
	case key.Matches(k, km.FileEnd):
		move(buffer.MoveDoc, buffer.DirEnd)

	case key.Matches(k, km.ShowPosition):
		m.showPosition()
	case key.Matches(k, km.GoTo):
		if b.Len() > 0 {
			m.promptGoTo()
		}
	case key.Matches(k, km.Search):
		if b.Len() > 0 {
			m.promptSearch()
		}
	case key.Matches(k, km.RepeatSearch):
		if b.Len() > 0 {
			m.runSearch()
		}
	case key.Matches(k, km.SwitchPane):
		b.TogglePane()

	case key.Matches(k, km.Inspector):
		m.inspector = !m.inspector
	case key.Matches(k, km.Endianness):
		m.bigEndian = !m.bigEndian
		m.setMsg("Inspector: %s", orderName(m.byteOrder()))
	case key.Matches(k, km.CopyOffset):
		m.copyOffset()

	default:
		nibbleKept = m.editByte(b, k, rows)
	}

	// Any key other than a consumed hex digit abandons a half-entered byte,
	// including keys that switch away from b.
	if !nibbleKept && b != nil {
		b.AbandonNibble()
	}
	return cmd
}

// editByte applies a plain key to the current byte. It reports whether the
// key was a hex digit fed to the nibble editor.
func (m *Model) editByte(b *buffer.Buffer, k input.Key, rows int) bool {
	if m.cfg.ReadOnly || b.Len() == 0 {
		return false
	}
	if b.Pane() == buffer.PaneText {
		if c, ok := k.Byte(); ok && k.IsPrintable() {
			b.Overwrite(c, rows)
		}
		return false
	}
	d, ok := k.HexDigit()
	if !ok {
		return false
	}
	b.EnterNibble(d, rows)
	return true
}

func (m *Model) setMsg(format string, args ...any) {
	m.msg = fmt.Sprintf(format, args...)
	m.msgSet = true
}

func (m *Model) setError(err error) {
	logger.Error("%v", err)
	m.setMsg("ERROR: %v", err)
}

func (m *Model) showPosition() {
	b := m.ring.Current()
	if b.Len() == 0 {
		m.setMsg("Empty buffer")
		return
	}
	pos := b.Cursor()
	m.setMsg("Position: 0x%08x (%d) of 0x%x (%d) bytes, %d%%",
		pos, pos, b.Len(), b.Len(), 100*(pos+1)/b.Len())
}

func (m *Model) copyOffset() {
	if m.cfg.Clipboard == nil {
		m.setMsg("No clipboard available")
		return
	}
	off := fmt.Sprintf("%08x", m.ring.Current().Cursor())
	if err := m.cfg.Clipboard.WriteText(off); err != nil {
		m.setError(fmt.Errorf("copying offset: %w", err))
		return
	}
	m.setMsg("Copied offset %s", off)
}

// closeCurrent closes the current buffer, asking to save it first when it
// has unsaved changes. Closing the last buffer quits.
func (m *Model) closeCurrent() tea.Cmd {
	b := m.ring.Current()
	if !b.Modified() {
		return m.dropCurrent()
	}

	m.askYesNo("Save changes?  (Answering no will DISCARD changes.)", func(m *Model, yes bool) tea.Cmd {
		if !yes {
			return m.dropCurrent()
		}
		if b.Filename() == "" {
			m.promptWrite(func(m *Model) tea.Cmd { return m.dropCurrent() })
			return nil
		}
		if !m.writeBuffer(b, b.Filename()) {
			return nil
		}
		return m.dropCurrent()
	})
	return nil
}

func (m *Model) dropCurrent() tea.Cmd {
	if b := m.ring.Current(); b != nil {
		logger.Info("closing %q", b.Filename())
	}
	if m.ring.Close() {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// promptWrite asks for a file name (defaulting to the buffer's) and writes
// the current buffer there. after runs only when the write succeeded.
func (m *Model) promptWrite(after func(m *Model) tea.Cmd) {
	b := m.ring.Current()
	m.askText("Write file", b.Filename(), func(m *Model, name string) tea.Cmd {
		if name == "" {
			return nil
		}
		if !m.writeBuffer(b, name) {
			return nil
		}
		if after != nil {
			return after(m)
		}
		return nil
	})
}

func (m *Model) writeBuffer(b *buffer.Buffer, name string) bool {
	if err := b.WriteFile(name); err != nil {
		m.setError(err)
		return false
	}
	logger.Info("wrote %d bytes to %q", b.Len(), name)
	m.setMsg("File saved: '%s'", name)
	return true
}

func (m *Model) promptRead() {
	m.askText("Read file", "", func(m *Model, name string) tea.Cmd {
		if name == "" {
			return nil
		}
		b, err := buffer.Load(name)
		if err != nil {
			m.setError(err)
			return nil
		}
		logger.Info("read %d bytes from %q", b.Len(), name)
		m.ring.SetCurrent(m.ring.Add(b))
		return nil
	})
}

func (m *Model) promptGoTo() {
	m.askText("Go to offset", "", func(m *Model, text string) tea.Cmd {
		s := strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
		off, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			m.setMsg("Bad offset: %s", text)
			return nil
		}
		pos := math.MaxInt
		if off < math.MaxInt {
			pos = int(off)
		}
		m.ring.Current().SetCursor(pos, buffer.BytesPerRow, m.Rows())
		return nil
	})
}

func searchLabel(pane buffer.Pane, last string) string {
	label := "Search text"
	if pane == buffer.PaneHex {
		label = "Search bytes"
	}
	if last == "" {
		return label
	}
	if grapheme.Count(last)+len(label)+10 > promptLabelMax {
		n := promptLabelMax - len(label) - 10
		return fmt.Sprintf("%s [%s...]", label, grapheme.Head(last, n))
	}
	return fmt.Sprintf("%s [%s]", label, last)
}

func (m *Model) promptSearch() {
	b := m.ring.Current()
	m.askText(searchLabel(b.Pane(), m.lastSearch), "", func(m *Model, text string) tea.Cmd {
		if text != "" {
			m.lastSearch = text
		}
		m.runSearch()
		return nil
	})
}

func (m *Model) runSearch() {
	b := m.ring.Current()
	if m.lastSearch == "" {
		m.setMsg("No previous search")
		return
	}
	pat, err := search.Pattern(b.Pane(), m.lastSearch)
	if err != nil {
		m.setMsg("Invalid byte sequence (must be a list of pairs of hex numbers)")
		return
	}
	if _, err := search.Forward(b, pat, m.Rows()); err != nil {
		if !errors.Is(err, search.ErrNotFound) {
			m.setError(err)
			return
		}
		if b.Pane() == buffer.PaneHex {
			m.setMsg("Byte sequence not found")
		} else {
			m.setMsg("Text not found")
		}
	}
}
