package term

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/iw2rmb/hed/input"
)

type readStep struct {
	b   byte
	n   int
	err error
}

func fakeTTY(steps ...readStep) *TTY {
	t := &TTY{
		sig:  make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	t.read = func(p []byte) (int, error) {
		if len(steps) == 0 {
			return 0, nil
		}
		s := steps[0]
		steps = steps[1:]
		if s.n > 0 {
			p[0] = s.b
		}
		return s.n, s.err
	}
	return t
}

func TestNext_ByteAndTimeout(t *testing.T) {
	tty := fakeTTY(readStep{b: 'x', n: 1}, readStep{})

	b, ok, err := tty.Next()
	if err != nil || !ok || b != 'x' {
		t.Fatalf("Next: got (%q,%v,%v), want ('x',true,nil)", b, ok, err)
	}
	_, ok, err = tty.Next()
	if err != nil || ok {
		t.Fatalf("timeout: got (ok=%v,err=%v), want (false,nil)", ok, err)
	}
}

func TestNext_ResizeInterrupts(t *testing.T) {
	tty := fakeTTY(readStep{b: 'x', n: 1})
	tty.resized.Store(true)

	_, _, err := tty.Next()
	if !errors.Is(err, input.ErrInterrupted) {
		t.Fatalf("err: got %v, want ErrInterrupted", err)
	}
	b, ok, err := tty.Next()
	if err != nil || !ok || b != 'x' {
		t.Fatalf("after resize: got (%q,%v,%v), want ('x',true,nil)", b, ok, err)
	}
}

func TestNext_ResizeDuringTimedOutRead(t *testing.T) {
	tty := &TTY{}
	tty.read = func(p []byte) (int, error) {
		tty.resized.Store(true)
		return 0, unix.EINTR
	}
	if _, _, err := tty.Next(); !errors.Is(err, input.ErrInterrupted) {
		t.Fatalf("err: got %v, want ErrInterrupted", err)
	}
}

func TestNext_ReadErrorPropagates(t *testing.T) {
	tty := fakeTTY(readStep{err: unix.EIO})
	if _, _, err := tty.Next(); !errors.Is(err, unix.EIO) {
		t.Fatalf("err: got %v, want EIO", err)
	}
}

func TestNext_FeedsDecoder(t *testing.T) {
	tty := fakeTTY(
		readStep{b: 0x1b, n: 1},
		readStep{b: '[', n: 1},
		readStep{b: 'A', n: 1},
	)
	k, err := input.NewDecoder(tty).ReadKey()
	if err != nil || k.Code != input.KeyUp {
		t.Fatalf("ReadKey: got %v,%v want up", k, err)
	}
}

func TestOpen_RejectsNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if _, err := Open(f, f); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("err: got %v, want ErrNotTerminal", err)
	}
}

func TestNext_FailsAfterClose(t *testing.T) {
	tty := fakeTTY(readStep{b: 'x', n: 1})
	if err := tty.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := tty.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	_, ok, err := tty.Next()
	if ok || !errors.Is(err, ErrClosed) {
		t.Fatalf("after close: got (ok=%v,err=%v), want ErrClosed", ok, err)
	}

	dec := input.NewDecoder(tty)
	k, err := dec.ReadKey()
	if !errors.Is(err, ErrClosed) || k.Code != input.KeyReadError {
		t.Fatalf("ReadKey after close: got (%v,%v), want KeyReadError/ErrClosed", k.Code, err)
	}
}
