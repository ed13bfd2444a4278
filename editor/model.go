package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hed/buffer"
	"github.com/iw2rmb/hed/document"
)

// BorderLines is the number of screen lines not used for bytes: title,
// column ruler, message line and key help.
const BorderLines = 4

// Model is a Bubble Tea component editing a ring of byte buffers.
type Model struct {
	cfg  Config
	ring *document.Ring

	width, height int
	sized         bool

	msg    string
	msgSet bool

	prompt prompt

	help     viewport.Model
	helpOpen bool

	lastSearch string
	inspector  bool
	bigEndian  bool

	quitting bool

	lastBuf     *buffer.Buffer
	lastVersion uint64
}

// New builds a model over bufs. With no buffers the session starts on an
// empty placeholder that the first Read replaces.
func New(cfg Config, bufs ...*buffer.Buffer) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}

	ring := document.NewRing(buffer.New())
	for _, b := range bufs {
		ring.Add(b)
	}

	m := Model{
		cfg:  cfg,
		ring: ring,
		help: viewport.New(0, 0),
	}
	m.lastBuf = ring.Current()
	m.lastVersion = m.lastBuf.Version()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// WithMessage shows text on the message line until the next key.
func (m Model) WithMessage(format string, args ...any) Model {
	m.setMsg(format, args...)
	return m
}

// Ring exposes the open buffers.
func (m Model) Ring() *document.Ring { return m.ring }

// Buffer returns the current buffer, or nil after the last one was closed.
func (m Model) Buffer() *buffer.Buffer { return m.ring.Current() }

// Message is the text on the message line.
func (m Model) Message() string { return m.msg }

// Prompting reports whether a prompt owns the keyboard.
func (m Model) Prompting() bool { return m.prompt.active }

func (m Model) HelpOpen() bool { return m.helpOpen }

// Quitting reports whether the last buffer was closed.
func (m Model) Quitting() bool { return m.quitting }

// Rows is the number of byte rows on a page.
func (m Model) Rows() int {
	rows := m.height - BorderLines
	if m.inspector {
		rows -= inspectorLines
	}
	return max(rows, 1)
}

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.help.Width = m.width
	m.help.Height = max(m.height-BorderLines, 1)
	if m.prompt.active && !m.prompt.yesNo {
		m.prompt.input.Width = promptWidth(m.width, m.prompt.input.Prompt)
	}

	b := m.ring.Current()
	if b == nil {
		return m
	}
	if !m.sized {
		m.sized = true
		if m.cfg.StartOffset > 0 {
			b.SetCursor(m.cfg.StartOffset, buffer.BytesPerRow, m.Rows())
		}
	}
	m.keepCursorVisible()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
		m.emitChange()
		return m, nil
	case KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg.Key)
		m.emitChange()
		return m, cmd
	}
	return m, nil
}

func (m *Model) keepCursorVisible() {
	b := m.ring.Current()
	if b == nil {
		return
	}
	rows := m.Rows()
	if !b.Viewport(rows).Contains(b.Cursor()) {
		b.SetCursor(b.Cursor(), 1, rows)
	}
}

func (m *Model) emitChange() {
	b := m.ring.Current()
	if b == nil {
		m.lastBuf = nil
		return
	}
	if b == m.lastBuf && b.Version() == m.lastVersion {
		return
	}
	m.lastBuf = b
	m.lastVersion = b.Version()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(b, m.ring.Len()))
	}
}
