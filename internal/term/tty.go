// Package term puts the controlling terminal into raw mode and exposes it
// as a byte source for input.Decoder.
package term

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"

	"github.com/iw2rmb/hed/input"
)

var (
	ErrNotTerminal = errors.New("not a terminal")
	ErrClosed      = errors.New("terminal closed")
)

// TTY is a terminal in raw mode with reads that time out after 100ms, so
// the escape decoder can tell a lone ESC from the start of a sequence.
type TTY struct {
	in  *os.File
	fd  int
	out int

	state *xterm.State

	resized atomic.Bool
	sig     chan os.Signal
	done    chan struct{}
	once    sync.Once

	read func(p []byte) (int, error)
}

// Open switches in to raw mode and starts watching for window resizes.
// out is queried for the window size.
func Open(in, out *os.File) (*TTY, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, in.Name())
	}

	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	if err := setReadTimeout(fd); err != nil {
		_ = xterm.Restore(fd, state)
		return nil, err
	}

	t := &TTY{
		in:    in,
		fd:    fd,
		out:   int(out.Fd()),
		state: state,
		sig:   make(chan os.Signal, 1),
		done:  make(chan struct{}),
	}
	t.read = func(p []byte) (int, error) { return unix.Read(t.fd, p) }

	signal.Notify(t.sig, unix.SIGWINCH)
	go t.watchResize()
	return t, nil
}

// setReadTimeout makes a read return after 100ms with no data
// (VMIN=0, VTIME=1) instead of blocking.
func setReadTimeout(fd int) error {
	tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("reading terminal attributes: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, tio); err != nil {
		return fmt.Errorf("setting terminal read timeout: %w", err)
	}
	return nil
}

func (t *TTY) watchResize() {
	for {
		select {
		case <-t.sig:
			t.resized.Store(true)
		case <-t.done:
			return
		}
	}
}

// Next implements input.Source. ok is false when the read timed out;
// a pending resize is reported as input.ErrInterrupted. After Close every
// call fails with ErrClosed.
func (t *TTY) Next() (byte, bool, error) {
	if t.closed() {
		return 0, false, ErrClosed
	}
	if t.resized.Swap(false) {
		return 0, false, input.ErrInterrupted
	}

	var buf [1]byte
	n, err := t.read(buf[:])
	switch {
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		err = nil
	case err != nil:
		return 0, false, err
	}
	if t.closed() {
		return 0, false, ErrClosed
	}
	if n == 0 {
		if t.resized.Swap(false) {
			return 0, false, input.ErrInterrupted
		}
		return 0, false, nil
	}
	return buf[0], true, nil
}

func (t *TTY) closed() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Size returns the window size in cells.
func (t *TTY) Size() (width, height int, err error) {
	width, height, err = xterm.GetSize(t.out)
	if err != nil {
		width, height, err = xterm.GetSize(t.fd)
	}
	return width, height, err
}

// Close stops resize notifications and restores the saved terminal mode.
func (t *TTY) Close() error {
	var err error
	t.once.Do(func() {
		signal.Stop(t.sig)
		close(t.done)
		if t.state != nil {
			err = xterm.Restore(t.fd, t.state)
		}
	})
	return err
}
