package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	ch := New(strings.NewReader("2\r\nabc\n"), &out)
	ctx := context.Background()

	line, err := ch.ReadLine(ctx, "Your answer (1-4): ")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != "2" {
		t.Fatalf("expected \"2\", got %q", line)
	}

	line, err = ch.ReadLine(ctx, "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != "abc" {
		t.Fatalf("expected \"abc\", got %q", line)
	}

	if _, err := ch.ReadLine(ctx, ""); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}

	if out.String() != "Your answer (1-4): " {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer
	ch := New(strings.NewReader(""), &out)

	for _, line := range []string{"Question 1/2", "", "1. go"} {
		if err := ch.WriteLine(line); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if out.String() != "Question 1/2\n\n1. go\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestReadLineCanceled(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	ch := New(in, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := ch.ReadLine(ctx, ""); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestClose(t *testing.T) {
	var out bytes.Buffer
	ch := New(strings.NewReader("1\n"), &out)

	if err := ch.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := ch.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	if _, err := ch.ReadLine(context.Background(), "prompt"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on read, got %v", err)
	}
	if err := ch.WriteLine("late"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on write, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected nothing written after close, got %q", out.String())
	}
}
