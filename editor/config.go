package editor

// Config configures the editor Model.
type Config struct {
	// ReadOnly turns off every byte edit (view mode). Navigation, search and
	// writing files still work.
	ReadOnly bool

	// StartOffset is where the cursor is placed in the first buffer once the
	// window size is known.
	StartOffset int

	KeyMap KeyMap
	Style  Style

	// Clipboard is optional; without it copy and paste report that no
	// clipboard is available.
	Clipboard Clipboard

	// OnChange is called after an update that changed the current buffer or
	// switched to another one.
	OnChange func(ChangeEvent)
}
