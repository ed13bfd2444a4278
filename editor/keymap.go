package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings. Keys are named the way
// input.Key.String names them.
//
// Most commands have a control-key form so they work on terminals that do
// not send the named keys.
type KeyMap struct {
	Close, Write, Read     key.Binding
	NextBuffer, PrevBuffer key.Binding
	Help, Redraw           key.Binding

	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding
	FileStart, FileEnd    key.Binding

	ShowPosition, GoTo   key.Binding
	Search, RepeatSearch key.Binding
	SwitchPane           key.Binding

	Inspector, Endianness key.Binding
	CopyOffset            key.Binding

	// Prompt editing.
	Accept, Cancel    key.Binding
	Backspace, Delete key.Binding
	Paste             key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close:      key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^X", "Close file (exit if no more files)")),
		Write:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^O", "Write file")),
		Read:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^R", "Read file into new buffer")),
		NextBuffer: key.NewBinding(key.WithKeys("alt+.", "alt+>"), key.WithHelp("M-.", "Go to next file")),
		PrevBuffer: key.NewBinding(key.WithKeys("alt+,", "alt+<"), key.WithHelp("M-,", "Go to previous file")),
		Help:       key.NewBinding(key.WithKeys("ctrl+g", "f1"), key.WithHelp("^G", "Show help")),
		Redraw:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^L", "Redraw screen")),

		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("^B", "Move cursor left")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("^F", "Move cursor right")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("^P", "Move cursor up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("^N", "Move cursor down")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("^A", "Go to start of row")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("^E", "Go to end of row")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+y"), key.WithHelp("^Y", "Move one page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+v"), key.WithHelp("^V", "Move one page down")),
		FileStart: key.NewBinding(key.WithKeys("ctrl+home", "alt+\\"), key.WithHelp("M-\\", "Go to start of file")),
		FileEnd:   key.NewBinding(key.WithKeys("ctrl+end", "alt+/"), key.WithHelp("M-/", "Go to end of file")),

		ShowPosition: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^C", "Show current position")),
		GoTo:         key.NewBinding(key.WithKeys("alt+g", "alt+G"), key.WithHelp("M-G", "Go to offset (hex)")),
		Search:       key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("^W", "Where is")),
		RepeatSearch: key.NewBinding(key.WithKeys("alt+w", "alt+W"), key.WithHelp("M-W", "Repeat last search")),
		SwitchPane:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("TAB", "Switch mode")),

		Inspector:  key.NewBinding(key.WithKeys("alt+i", "alt+I"), key.WithHelp("M-I", "Toggle data inspector")),
		Endianness: key.NewBinding(key.WithKeys("alt+e", "alt+E"), key.WithHelp("M-E", "Toggle inspector byte order")),
		CopyOffset: key.NewBinding(key.WithKeys("alt+c", "alt+C"), key.WithHelp("M-C", "Copy cursor offset")),

		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("RET", "Accept")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^C", "Cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("BS", "Delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("DEL", "Delete right")),
		Paste:     key.NewBinding(key.WithKeys("alt+v", "alt+V"), key.WithHelp("M-V", "Paste")),
	}
}

// isZero reports whether km was left unset in Config.
func (km KeyMap) isZero() bool {
	return len(km.Close.Keys()) == 0 && len(km.Left.Keys()) == 0
}
