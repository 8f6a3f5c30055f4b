// Package prompt asks the user to pick a variant on the console.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ErrNoInput is returned when the input ends before a line was read.
var ErrNoInput = errors.New("no input provided")

// TextHandler reads answers line by line from a reader.
type TextHandler struct {
	Reader *bufio.Reader
	Writer io.Writer

	// Interactive controls whether questions and the "> " prompt are printed.
	// It defaults to whether the reader is a terminal.
	Interactive bool

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// Option defines configuration for TextHandler.
type Option func(*TextHandler)

// WithInteractive overrides terminal detection.
func WithInteractive(interactive bool) Option {
	return func(h *TextHandler) {
		h.Interactive = interactive
	}
}

// NewTextHandler creates a handler for standard text IO.
// Nil arguments mean os.Stdin and os.Stdout.
func NewTextHandler(r io.Reader, w io.Writer, opts ...Option) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:      bufio.NewReader(r),
		Writer:      w,
		Interactive: IsTerminal(r),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Ask can honor context cancellation.
func (h *TextHandler) pump() {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				h.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

// Ask prints question (in interactive mode) and returns the next line as a
// selector. Lines CleanSelector rejects are reported and asked again.
func (h *TextHandler) Ask(ctx context.Context, question string) (string, error) {
	h.initPump()

	if h.Interactive && question != "" {
		fmt.Fprintln(h.Writer, question)
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			if h.Interactive {
				fmt.Fprint(h.Writer, "> ")
			}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", ErrNoInput
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := CleanSelector(res.text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// Choose asks a question listing the options, e.g.
// "Which hamburger would you like? (chicken/beef)".
// The answer is returned as typed; validating it is up to the factory.
func (h *TextHandler) Choose(ctx context.Context, question string, options []string) (string, error) {
	if len(options) > 0 {
		question = fmt.Sprintf("%s (%s)", question, strings.Join(options, "/"))
	}
	return h.Ask(ctx, question)
}
