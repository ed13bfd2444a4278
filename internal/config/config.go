// Package config loads the optional TOML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/hed/editor"
)

var ErrUnknownKeys = errors.New("unknown config keys")

// File mirrors config.toml.
type File struct {
	ReadOnly bool   `toml:"read_only"`
	LogFile  string `toml:"log_file"`
	Debug    bool   `toml:"debug"`
	Theme    Theme  `toml:"theme"`
}

type Theme struct {
	Title          string `toml:"title"`
	Cursor         string `toml:"cursor"`
	CursorPending  string `toml:"cursor_pending"`
	CursorInactive string `toml:"cursor_inactive"`
	Message        string `toml:"message"`
	KeyLabel       string `toml:"key_label"`
}

// DefaultPath is <user config dir>/hed/config.toml, or "" when the config
// directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hed", "config.toml")
}

// Load reads path. A missing file (or an empty path) gives the zero File.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, fmt.Errorf("%w in %s: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}
	return f, nil
}

// Style builds the editor style from the theme colors.
func (f File) Style() editor.Style {
	return editor.ThemedStyle(editor.Theme{
		Title:          f.Theme.Title,
		Cursor:         f.Theme.Cursor,
		CursorPending:  f.Theme.CursorPending,
		CursorInactive: f.Theme.CursorInactive,
		Message:        f.Theme.Message,
		KeyLabel:       f.Theme.KeyLabel,
	})
}
