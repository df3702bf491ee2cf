package emitter

import (
	"bytes"
	"errors"
	"testing"
)

func TestIndentation(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)
	e.Indent()
	e.Indent()
	e.PrintIndent()
	e.Write("x;")
	if got, want := buf.String(), "        x;"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCaptureRestoresSink(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)

	text, err := e.Capture(func() error {
		e.Write("captured")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if text != "captured" {
		t.Errorf("captured text = %q", text)
	}

	e.Write("after")
	if buf.String() != "after" {
		t.Errorf("sink after capture = %q, want %q", buf.String(), "after")
	}
}

func TestCaptureRestoresSinkOnError(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)

	wantErr := errors.New("boom")
	_, err := e.Capture(func() error {
		e.Write("partial")
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	e.Write("after")
	if buf.String() != "after" {
		t.Errorf("sink after failed capture = %q, want %q", buf.String(), "after")
	}
}
