package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are reported on the message line.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
