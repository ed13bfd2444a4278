package main

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errUnsupported = errors.New("no clipboard utility found")

// systemClipboard backs editor.Clipboard with the desktop clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return errUnsupported
	}
	return clipboard.WriteAll(s)
}
