package main

import (
	"errors"
	"strings"
	"testing"
)

// fakeClipboard is a minimal clipboard.Clipboard double for exercising
// subcommand Run methods without a live X11 connection.
type fakeClipboard struct {
	text        string
	primaryText string
	readErr     error
	writeErr    error
}

func (f *fakeClipboard) Read() (string, error)       { return f.text, f.readErr }
func (f *fakeClipboard) Write(s string) error        { f.text = s; return f.writeErr }
func (f *fakeClipboard) ReadPrimary() (string, error) { return f.primaryText, f.readErr }
func (f *fakeClipboard) WritePrimary(s string) error  { f.primaryText = s; return f.writeErr }
func (f *fakeClipboard) Close() error                 { return nil }

func newTestRoot(clip *fakeClipboard) *root {
	return &root{program: "wclip", clip: clip}
}

func TestReadCmdRunPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	r := newTestRoot(&fakeClipboard{readErr: sentinel})
	cmd := &readCmd{r: r}

	err := cmd.Run()
	if !errors.Is(err, sentinel) {
		t.Fatalf("Run() = %v, want wrapped %v", err, sentinel)
	}
	if !strings.Contains(err.Error(), "read:") {
		t.Errorf("Run() error = %q, want it to mention the read op", err.Error())
	}
}

func TestWriteCmdRunUsesPositionalArg(t *testing.T) {
	clip := &fakeClipboard{}
	r := newTestRoot(clip)
	cmd, err := parseWriteCmd([]string{"hello", "world"}, r)
	if err != nil {
		t.Fatalf("parseWriteCmd: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if clip.text != "hello world" {
		t.Errorf("clip.text = %q, want %q", clip.text, "hello world")
	}
}

func TestWriteCmdRunPrimaryFlag(t *testing.T) {
	clip := &fakeClipboard{}
	r := newTestRoot(clip)
	cmd, err := parseWriteCmd([]string{"-primary", "hi"}, r)
	if err != nil {
		t.Fatalf("parseWriteCmd: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if clip.primaryText != "hi" {
		t.Errorf("clip.primaryText = %q, want %q", clip.primaryText, "hi")
	}
	if clip.text != "" {
		t.Errorf("clip.text = %q, want empty (should not touch CLIPBOARD)", clip.text)
	}
}

func TestUsageErrorListsCommands(t *testing.T) {
	r := newRoot()
	err := &UsageError{of: r}
	if !strings.Contains(err.Error(), "read") || !strings.Contains(err.Error(), "write") {
		t.Errorf("UsageError.Error() = %q, want it to list read/write commands", err.Error())
	}
}
