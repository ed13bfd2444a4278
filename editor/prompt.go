package editor

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hed/input"
)

// promptMaxLen bounds the text typed into a prompt.
const promptMaxLen = 255

// prompt is an in-model line edit or yes/no question. While active it
// receives every key.
type prompt struct {
	active bool
	yesNo  bool
	label  string

	input textinput.Model

	onText  func(m *Model, text string) tea.Cmd
	onYesNo func(m *Model, yes bool) tea.Cmd
}

func (m *Model) newPromptInput(label string) textinput.Model {
	st := m.cfg.Style
	ti := textinput.New()
	ti.Prompt = label + ": "
	ti.CharLimit = promptMaxLen
	ti.PromptStyle = st.Message
	ti.TextStyle = st.Message
	ti.Cursor.Style = st.Cursor
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Width = promptWidth(m.width, ti.Prompt)
	ti.Focus()
	return ti
}

// promptWidth is the room left for text after the leading space, the label
// and the cursor cell.
func promptWidth(width int, label string) int {
	return max(width-lipgloss.Width(label)-2, 1)
}

func (m *Model) askText(label, initial string, done func(m *Model, text string) tea.Cmd) {
	ti := m.newPromptInput(label)
	ti.SetValue(initial)
	ti.CursorEnd()
	m.prompt = prompt{
		active: true,
		label:  label,
		input:  ti,
		onText: done,
	}
	m.msg = ""
}

func (m *Model) askYesNo(question string, done func(m *Model, yes bool) tea.Cmd) {
	m.prompt = prompt{
		active:  true,
		yesNo:   true,
		label:   question,
		onYesNo: done,
	}
	m.msg = ""
}

func (p prompt) value() string { return p.input.Value() }

func (m *Model) updatePrompt(k input.Key) tea.Cmd {
	km := m.cfg.KeyMap
	p := &m.prompt

	if key.Matches(k, km.Cancel) {
		m.prompt = prompt{}
		m.msg = ""
		return nil
	}

	if p.yesNo {
		var yes bool
		switch k.Code {
		case 'y', 'Y':
			yes = true
		case 'n', 'N':
		default:
			return nil
		}
		done := p.onYesNo
		m.prompt = prompt{}
		m.msg = ""
		m.msgSet = false
		return done(m, yes)
	}

	switch {
	case key.Matches(k, km.Accept):
		done, text := p.onText, p.value()
		m.prompt = prompt{}
		m.msg = ""
		m.msgSet = false
		return done(m, text)
	case key.Matches(k, km.Paste):
		m.pasteIntoPrompt()
		return nil
	}

	if msg, ok := lineEditMsg(km, k); ok {
		p.input, _ = p.input.Update(msg)
	}
	return nil
}

// lineEditMsg translates a decoded key into the textinput key it stands
// for. Bindings are resolved through km so remapped keys keep working.
func lineEditMsg(km KeyMap, k input.Key) (tea.KeyMsg, bool) {
	switch {
	case key.Matches(k, km.Home):
		return tea.KeyMsg{Type: tea.KeyHome}, true
	case key.Matches(k, km.End):
		return tea.KeyMsg{Type: tea.KeyEnd}, true
	case key.Matches(k, km.Left):
		return tea.KeyMsg{Type: tea.KeyLeft}, true
	case key.Matches(k, km.Right):
		return tea.KeyMsg{Type: tea.KeyRight}, true
	case key.Matches(k, km.Backspace):
		return tea.KeyMsg{Type: tea.KeyBackspace}, true
	case key.Matches(k, km.Delete):
		return tea.KeyMsg{Type: tea.KeyDelete}, true
	}
	if c, ok := k.Byte(); ok && k.IsPrintable() {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{rune(c)}}, true
	}
	return tea.KeyMsg{}, false
}

// pasteIntoPrompt inserts the printable ASCII part of the clipboard text at
// the prompt cursor.
func (m *Model) pasteIntoPrompt() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.setError(err)
		return
	}
	runes := make([]rune, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= 32 && s[i] < 127 {
			runes = append(runes, rune(s[i]))
		}
	}
	if len(runes) == 0 {
		return
	}
	m.prompt.input, _ = m.prompt.input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: runes, Paste: true})
}
