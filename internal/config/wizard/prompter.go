package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Question is a single prompt shown to the user.
type Question struct {
	Title       string
	Description string

	// Default replaces an empty answer.
	Default string

	// Hint is displayed but not applied.
	Hint string

	// Options restricts a form-mode answer to one of the listed values.
	// Line mode shows them and accepts free text.
	Options []string

	// Confirm marks a yes/no question. Default should be "y" or "n".
	Confirm bool

	// Secret masks the input in form mode.
	Secret bool
}

// Prompter asks questions one at a time.
//
// Ask returns the trimmed answer, or q.Default when the answer is empty.
// After Close, Ask returns ErrPrompterClosed.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
	Close() error
}

// LinePrompter reads one line per question from an input stream.
type LinePrompter struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool

	// pending carries the result of a read that outlived a canceled Ask.
	pending chan lineResult
}

// lineResult is the outcome of a single ReadString call.
type lineResult struct {
	line string
	err  error
}

// NewLinePrompter returns a prompter that writes prompts to out and reads
// answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes the prompt and reads a line. End of input counts as an empty
// answer so piped input may omit trailing defaults.
func (p *LinePrompter) Ask(ctx context.Context, q Question) (string, error) {
	if p.closed {
		return "", ErrPrompterClosed
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, q.prompt()); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := p.readLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		if ctx.Err() != nil {
			return "", err
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}

	return resolve(line, q.Default), nil
}

// readLine reads the next line, returning early with ctx.Err() when ctx is
// canceled. An abandoned read is handed to the next call so the reader is
// never used by two goroutines at once.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the prompter from reading further input. The underlying
// reader is left open.
func (p *LinePrompter) Close() error {
	p.closed = true
	return nil
}

// prompt renders the question as a single line.
func (q Question) prompt() string {
	var b strings.Builder
	b.WriteString(q.Title)

	switch {
	case q.Confirm:
		if isAffirmative(q.Default) {
			b.WriteString(" [Y/n]")
		} else {
			b.WriteString(" [y/N]")
		}
	case len(q.Options) > 0:
		fmt.Fprintf(&b, " [%s]", strings.Join(q.Options, "/"))
		if q.Default != "" {
			fmt.Fprintf(&b, " (%s)", q.Default)
		}
	case q.Hint != "":
		fmt.Fprintf(&b, " (%s)", q.Hint)
	case q.Default != "":
		fmt.Fprintf(&b, " (%s)", q.Default)
	}

	b.WriteString(": ")
	return b.String()
}

// resolve trims an answer and falls back to def when it is empty.
func resolve(answer, def string) string {
	if s := strings.TrimSpace(answer); s != "" {
		return s
	}
	return def
}

// isAffirmative reports whether s is "y" or "yes", ignoring case.
func isAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
