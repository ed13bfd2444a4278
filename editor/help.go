package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hed/input"
)

func (m *Model) openHelp() {
	m.helpOpen = true
	m.help.Width = m.width
	m.help.Height = max(m.height-BorderLines, 1)
	m.help.SetContent(helpText(m.cfg.KeyMap))
	m.help.SetYOffset(0)
	m.msg = ""
}

func (m Model) updateHelp(k input.Key) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	page := m.help.Height

	switch {
	case key.Matches(k, km.Close), key.Matches(k, km.Cancel):
		m.helpOpen = false
	case key.Matches(k, km.Redraw):
		return m, tea.ClearScreen
	case key.Matches(k, km.Up):
		m.help.SetYOffset(m.help.YOffset - 1)
	case key.Matches(k, km.Down):
		m.help.SetYOffset(m.help.YOffset + 1)
	case key.Matches(k, km.PageUp):
		m.help.SetYOffset(m.help.YOffset - page)
	case key.Matches(k, km.PageDown):
		m.help.SetYOffset(m.help.YOffset + page)
	case key.Matches(k, km.FileStart):
		m.help.SetYOffset(0)
	case key.Matches(k, km.FileEnd):
		m.help.SetYOffset(m.help.TotalLineCount())
	}
	return m, nil
}

// bindingKeys lists every key of b, the help label first.
func bindingKeys(b key.Binding) string {
	label := b.Help().Key
	var alts []string
	for _, k := range b.Keys() {
		if k != label && !strings.EqualFold(keyLabel(k), label) {
			alts = append(alts, k)
		}
	}
	if len(alts) == 0 {
		return label
	}
	return fmt.Sprintf("%-5s (%s)", label, strings.Join(alts, ", "))
}

// keyLabel writes a key name in ^X / M-X notation.
func keyLabel(k string) string {
	switch {
	case strings.HasPrefix(k, "ctrl+") && len(k) == len("ctrl+")+1:
		return "^" + strings.ToUpper(k[len("ctrl+"):])
	case strings.HasPrefix(k, "alt+") && len(k) == len("alt+")+1:
		return "M-" + strings.ToUpper(k[len("alt+"):])
	}
	return k
}

func helpText(km KeyMap) string {
	line := func(b key.Binding) string {
		return fmt.Sprintf("   %-28s %s", bindingKeys(b), b.Help().Desc)
	}

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Editor keys:", []key.Binding{km.Close, km.Write, km.Read, km.NextBuffer, km.PrevBuffer}},
		{"", []key.Binding{km.Help, km.Redraw}},
		{"", []key.Binding{km.Left, km.Right, km.Up, km.Down, km.Home, km.End, km.PageUp, km.PageDown, km.FileStart, km.FileEnd}},
		{"", []key.Binding{km.ShowPosition, km.GoTo, km.Search, km.RepeatSearch, km.SwitchPane}},
		{"", []key.Binding{km.Inspector, km.Endianness, km.CopyOffset}},
		{"Prompt keys:", []key.Binding{km.Accept, km.Cancel, km.Backspace, km.Delete, km.Paste}},
	}

	out := []string{
		"Control keys are written with '^', so ^C means Ctrl+C.",
		"Alt keys are written with 'M-', so M-G means Alt+G.",
		"Alternative keys are shown in parentheses.",
		"",
	}
	for _, s := range sections {
		if s.title != "" {
			out = append(out, s.title)
		}
		out = append(out, "")
		for _, b := range s.bindings {
			out = append(out, line(b))
		}
	}
	out = append(out,
		"",
		"Only on hex pane:",
		"",
		"   0-9, a-f, A-F                Change file bytes (two digits per byte)",
		"",
		"Only on text pane:",
		"",
		"   any ASCII char               Change file text",
	)
	return strings.Join(out, "\n")
}
