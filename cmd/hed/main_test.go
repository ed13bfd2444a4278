package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	hed "github.com/iw2rmb/hed"
)

func TestParseOffset(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "1f", want: 0x1f},
		{in: "0x100", want: 0x100},
		{in: "0XfF", want: 0xff},
		{in: "ffffffffffffffff", want: math.MaxInt},
		{in: "", wantErr: true},
		{in: "0x", wantErr: true},
		{in: "zz", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseOffset(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseOffset(%q) = %d, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseOffset(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseOffset(%q) = %#x, want %#x", tc.in, got, tc.want)
		}
	}
}

func TestParseArgs(t *testing.T) {
	var stderr bytes.Buffer
	opt, err := parseArgs([]string{"-v", "-o", "0x40", "-debug", "-config", "c.toml", "a.bin", "-"}, &stderr)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	want := options{
		viewOnly:   true,
		offset:     0x40,
		configPath: "c.toml",
		debug:      true,
		files:      []string{"a.bin", "-"},
	}
	if diff := cmp.Diff(want, opt, cmp.AllowUnexported(options{})); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArgsBadOffset(t *testing.T) {
	var stderr bytes.Buffer
	if _, err := parseArgs([]string{"-o", "nope"}, &stderr); err == nil {
		t.Fatalf("expected error for bad offset")
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != hed.Banner() {
		t.Fatalf("version output = %q, want %q", got, hed.Banner())
	}
}

func TestRunUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestLoadBuffers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var stderr bytes.Buffer
	bufs, errs := loadBuffers(
		[]string{path, filepath.Join(dir, "missing"), "-"},
		strings.NewReader("xyz!"),
		&stderr,
	)
	if len(bufs) != 2 {
		t.Fatalf("loaded %d buffers, want 2", len(bufs))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if got := bufs[0].Len(); got != 3 {
		t.Fatalf("file buffer len = %d, want 3", got)
	}
	if got := bufs[1].Len(); got != 4 {
		t.Fatalf("stdin buffer len = %d, want 4", got)
	}
	if !strings.Contains(stderr.String(), "Reading from stdin") {
		t.Fatalf("missing stdin notice: %q", stderr.String())
	}
}
