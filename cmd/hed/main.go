package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	hed "github.com/iw2rmb/hed"
	"github.com/iw2rmb/hed/buffer"
	"github.com/iw2rmb/hed/editor"
	"github.com/iw2rmb/hed/input"
	"github.com/iw2rmb/hed/internal/config"
	"github.com/iw2rmb/hed/internal/logger"
	"github.com/iw2rmb/hed/internal/term"
)

type options struct {
	viewOnly    bool
	offset      int
	configPath  string
	logPath     string
	debug       bool
	showVersion bool
	files       []string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opt options
	var offset string

	fs := flag.NewFlagSet("hed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: hed [options] [file | -]\n\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&opt.viewOnly, "v", false, "view mode: open files read-only")
	fs.StringVar(&offset, "o", "", "start at this hex `offset`")
	fs.StringVar(&opt.configPath, "config", config.DefaultPath(), "config `file`")
	fs.StringVar(&opt.logPath, "log", "", "log `file` (default from config, else "+logger.DefaultPath()+")")
	fs.BoolVar(&opt.debug, "debug", false, "write debug lines to the log")
	fs.BoolVar(&opt.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}

	if offset != "" {
		off, err := parseOffset(offset)
		if err != nil {
			return opt, err
		}
		opt.offset = off
	}
	opt.files = fs.Args()
	return opt, nil
}

func parseOffset(s string) (int, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("bad offset %q: %w", s, err)
	}
	if v > math.MaxInt {
		return math.MaxInt, nil
	}
	return int(v), nil
}

// loadBuffers opens the named files ("-" reads stdin). Files that fail to
// load are reported on the message line rather than aborting.
func loadBuffers(names []string, stdin io.Reader, stderr io.Writer) ([]*buffer.Buffer, []error) {
	var bufs []*buffer.Buffer
	var errs []error
	for _, name := range names {
		var (
			b   *buffer.Buffer
			err error
		)
		if name == "-" {
			fmt.Fprintln(stderr, "Reading from stdin, press CTRL+C to abort")
			b, err = buffer.ReadFrom(stdin)
		} else {
			b, err = buffer.Load(name)
		}
		if err != nil {
			logger.Error("%v", err)
			errs = append(errs, err)
			continue
		}
		logger.Info("loaded %q (%d bytes)", name, b.Len())
		bufs = append(bufs, b)
	}
	return bufs, errs
}

// openTTY returns the terminal to read keys from. /dev/tty is preferred so
// stdin stays free for "-".
func openTTY() (*term.TTY, func(), error) {
	if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		t, err := term.Open(f, os.Stdout)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return t, func() { _ = t.Close(); _ = f.Close() }, nil
	}
	t, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		return nil, nil, err
	}
	return t, func() { _ = t.Close() }, nil
}

// app adapts editor.Model to tea.Model.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

// forwardKeys decodes keys until the terminal is closed. A redraw also
// pushes the current window size, since the decoder saw the resize first.
func forwardKeys(p *tea.Program, tty *term.TTY) {
	dec := input.NewDecoder(tty)
	for {
		k, err := dec.ReadKey()
		if errors.Is(err, term.ErrClosed) {
			return
		}
		if err != nil {
			logger.Error("key decoder stopped: %v", err)
			p.Quit()
			return
		}
		if k.Code == input.KeyRedraw {
			if w, h, err := tty.Size(); err == nil {
				p.Send(tea.WindowSizeMsg{Width: w, Height: h})
			}
		}
		p.Send(editor.KeyMsg{Key: k})
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opt, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "hed:", err)
		return 2
	}
	if opt.showVersion {
		fmt.Fprintln(stdout, hed.Banner())
		return 0
	}

	cfg, cfgErr := config.Load(opt.configPath)

	logPath := opt.logPath
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if err := logger.Init(logPath, opt.debug || cfg.Debug); err != nil {
		fmt.Fprintln(stderr, "hed:", err)
	}
	defer logger.Close()
	logger.Info("%s starting", hed.Banner())
	if cfgErr != nil {
		logger.Error("%v", cfgErr)
	}

	bufs, loadErrs := loadBuffers(opt.files, stdin, stderr)

	tty, closeTTY, err := openTTY()
	if err != nil {
		fmt.Fprintln(stderr, "ERROR setting up terminal:", err)
		return 1
	}

	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())

	m := editor.New(editor.Config{
		ReadOnly:    opt.viewOnly || cfg.ReadOnly,
		StartOffset: opt.offset,
		KeyMap:      editor.DefaultKeyMap(),
		Style:       cfg.Style(),
		Clipboard:   systemClipboard{},
		OnChange: func(ev editor.ChangeEvent) {
			logger.Debug("buffer %q offset %#x modified=%v (%d open)", ev.Filename, ev.Offset, ev.Modified, ev.Buffers)
		},
	}, bufs...)
	switch {
	case len(loadErrs) > 0:
		m = m.WithMessage("ERROR: %v", loadErrs[0])
	case cfgErr != nil:
		m = m.WithMessage("ERROR: %v", cfgErr)
	}

	p := tea.NewProgram(app{editor: m},
		tea.WithInput(nil),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)

	go forwardKeys(p, tty)
	if w, h, err := tty.Size(); err == nil {
		go p.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}

	_, err = p.Run()
	closeTTY()
	if err != nil {
		logger.Error("program: %v", err)
		fmt.Fprintln(stderr, "hed:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
