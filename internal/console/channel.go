// Package console implements a quiz channel on a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var ErrClosed = errors.New("console channel closed")

type lineResult struct {
	text string
	err  error
}

// Channel reads answers line by line from in and writes quiz text to out.
type Channel struct {
	in  io.Reader
	out io.Writer

	lines     chan lineResult
	startOnce sync.Once

	mu     sync.Mutex
	closed bool
}

func New(in io.Reader, out io.Writer) *Channel {
	return &Channel{
		in:    in,
		out:   out,
		lines: make(chan lineResult, 1),
	}
}

func (c *Channel) WriteLine(text string) error {
	if c.isClosed() {
		return ErrClosed
	}
	_, err := fmt.Fprintln(c.out, text)
	return err
}

// ReadLine prints prompt and waits for the next input line or for ctx to end.
func (c *Channel) ReadLine(ctx context.Context, prompt string) (string, error) {
	if c.isClosed() {
		return "", ErrClosed
	}
	if prompt != "" {
		if _, err := fmt.Fprint(c.out, prompt); err != nil {
			return "", err
		}
	}

	c.startOnce.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimRight(res.text, "\r"), nil
	}
}

// Close stops further reads and writes. The underlying reader stays open.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *Channel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Channel) scan() {
	defer close(c.lines)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- lineResult{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		c.lines <- lineResult{err: err}
	}
}
