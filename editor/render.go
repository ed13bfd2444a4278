package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	hed "github.com/iw2rmb/hed"
	"github.com/iw2rmb/hed/buffer"
	"github.com/iw2rmb/hed/internal/grapheme"
)

// keyHelpSpacing is the column width of one key help entry.
const keyHelpSpacing = 16

const rulerText = "Offset   | 00 01 02 03 04 05 06 07  08 09 0a 0b 0c 0d 0e 0f | 0123456789abcdef |"

func (m Model) View() string {
	if m.quitting || m.height <= 0 {
		return ""
	}
	b := m.ring.Current()
	if b == nil {
		return ""
	}

	if m.helpOpen {
		lines := []string{m.renderTitle(" Help"), ""}
		lines = append(lines, strings.Split(m.help.View(), "\n")...)
		lines = append(lines, m.renderMessage(), m.renderKeyHelp(m.helpKeys()))
		return strings.Join(lines, "\n")
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderTitle(titleText(b, m.cfg.ReadOnly)))
	lines = append(lines, m.cfg.Style.Ruler.Render(rulerText))
	lines = append(lines, m.renderRows(b)...)
	if m.inspector {
		for _, l := range inspect(b, m.byteOrder()) {
			lines = append(lines, m.cfg.Style.Inspector.Render(l))
		}
	}
	lines = append(lines, m.renderMessage(), m.renderKeyHelp(m.mainKeys()))
	return strings.Join(lines, "\n")
}

func titleText(b *buffer.Buffer, readOnly bool) string {
	name := b.Filename()
	if name == "" {
		name = "New Buffer"
	}
	s := " " + name
	if b.Modified() {
		s += " (modified)"
	}
	if readOnly {
		s += " (view mode)"
	}
	return s
}

// renderTitle fills the title bar with left on the left and the program
// banner on the right; left is cut short when both do not fit.
func (m Model) renderTitle(left string) string {
	banner := hed.Banner() + " "
	room := m.width - runewidth.StringWidth(banner) - 1
	if room < 1 {
		return m.cfg.Style.Title.Render(grapheme.Truncate(left, m.width, "…"))
	}
	left = grapheme.Truncate(left, room, "…")
	return m.cfg.Style.Title.Render(runewidth.FillRight(left, room+1) + banner)
}

func (m Model) renderRows(b *buffer.Buffer) []string {
	rows := m.Rows()
	vp := b.Viewport(rows)
	st := m.cfg.Style

	hexActive := b.Pane() == buffer.PaneHex && !m.cfg.ReadOnly
	textActive := b.Pane() == buffer.PaneText && !m.cfg.ReadOnly
	hexBase, textBase := st.InactivePane, st.InactivePane
	if hexActive {
		hexBase = st.ActivePane
	}
	if textActive {
		textBase = st.ActivePane
	}
	hexCursor, textCursor := st.CursorInactive, st.CursorInactive
	switch {
	case b.Nibble().Pending:
		hexCursor = st.CursorPending
	case hexActive:
		hexCursor = st.Cursor
	}
	if textActive {
		textCursor = st.Cursor
	}

	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		r := vp.Top + i
		data := b.Row(r)
		if data == nil {
			out = append(out, "")
			continue
		}
		start := r * buffer.BytesPerRow

		hexCells := make([]string, buffer.BytesPerRow)
		textCells := make([]string, buffer.BytesPerRow)
		for j := range hexCells {
			if j >= len(data) {
				hexCells[j] = "  "
				textCells[j] = " "
				continue
			}
			v, _ := b.DisplayByte(start + j)
			hexCells[j] = fmt.Sprintf("%02x", v)
			textCells[j] = string(printable(v))
		}

		cur := -1
		if c := b.Cursor(); c >= start && c < start+len(data) {
			cur = c - start
		}

		var sb strings.Builder
		sb.WriteString(st.Offset.Render(fmt.Sprintf("%08x", start)))
		sb.WriteString(" | ")
		sb.WriteString(renderCells(hexCells, hexSep, cur, hexBase, hexCursor))
		sb.WriteString(" | ")
		sb.WriteString(renderCells(textCells, nil, cur, textBase, textCursor))
		sb.WriteString(" |")
		out = append(out, sb.String())
	}
	return out
}

// hexSep returns the separator written before hex cell j.
func hexSep(j int) string {
	switch j {
	case 0:
		return ""
	case buffer.BytesPerRow / 2:
		return "  "
	}
	return " "
}

// renderCells joins cells with sep, styling the cursor cell apart from the
// rest so each row costs at most three Render calls per pane.
func renderCells(cells []string, sep func(int) string, cur int, base, cursor lipgloss.Style) string {
	join := func(from, to int) string {
		var sb strings.Builder
		for j := from; j < to; j++ {
			if sep != nil && j > from {
				sb.WriteString(sep(j))
			}
			sb.WriteString(cells[j])
		}
		return sb.String()
	}

	if cur < 0 {
		return base.Render(join(0, len(cells)))
	}

	var sb strings.Builder
	if cur > 0 {
		sb.WriteString(base.Render(join(0, cur)))
		if sep != nil {
			sb.WriteString(sep(cur))
		}
	}
	sb.WriteString(cursor.Render(cells[cur]))
	if cur+1 < len(cells) {
		if sep != nil {
			sb.WriteString(sep(cur + 1))
		}
		sb.WriteString(base.Render(join(cur+1, len(cells))))
	}
	return sb.String()
}

func printable(v byte) byte {
	if v < 32 || v >= 0x7f {
		return '.'
	}
	return v
}

func (m Model) renderMessage() string {
	st := m.cfg.Style
	switch {
	case m.prompt.active && m.prompt.yesNo:
		return st.Message.Render(" " + m.prompt.label)
	case m.prompt.active:
		return st.Message.Render(" ") + m.prompt.input.View()
	case m.msg != "":
		return st.Message.Render(" " + m.msg)
	}
	return ""
}

type keyHelp struct {
	label, desc string
}

func (m Model) mainKeys() []keyHelp {
	km := m.cfg.KeyMap
	if m.prompt.active {
		keys := []keyHelp{{km.Cancel.Help().Key, "Cancel"}}
		if m.prompt.yesNo {
			keys = append(keys, keyHelp{" Y", "Yes"}, keyHelp{" N", "No"})
		}
		return keys
	}

	closeDesc := "Close"
	if m.ring.Len() == 1 {
		closeDesc = "Exit"
	}
	keys := []keyHelp{
		{km.Close.Help().Key, closeDesc},
		{km.Write.Help().Key, "Write File"},
		{km.Read.Help().Key, "Read File"},
		{km.Search.Help().Key, "Where Is"},
	}
	if !m.cfg.ReadOnly {
		keys = append(keys, keyHelp{km.SwitchPane.Help().Key, "Switch Mode"})
	}
	return append(keys, keyHelp{km.Help.Help().Key, "Help"})
}

func (m Model) helpKeys() []keyHelp {
	km := m.cfg.KeyMap
	return []keyHelp{
		{km.Cancel.Help().Key, "Back"},
		{km.Up.Help().Key, "Up"},
		{km.Down.Help().Key, "Down"},
		{km.PageUp.Help().Key, "Page Up"},
		{km.PageDown.Help().Key, "Page Down"},
	}
}

func (m Model) renderKeyHelp(keys []keyHelp) string {
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(m.cfg.Style.KeyLabel.Render(k.label))
		entry := " " + k.desc
		if pad := keyHelpSpacing - 1 - len(k.label) - len(entry); pad > 0 {
			entry += strings.Repeat(" ", pad)
		}
		sb.WriteString(entry)
	}
	return strings.TrimRight(sb.String(), " ")
}
