package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// SignalError is the cancellation cause of a context stopped by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return "received signal: " + e.Signal.String()
}

// NotifyContext returns a context cancelled on SIGINT or SIGTERM, with a
// *SignalError as its cause. After the first signal the handler is removed,
// so a second one terminates the process as usual.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	return cancelOnSignal(parent, sigCh, func() { signal.Stop(sigCh) })
}

func cancelOnSignal(parent context.Context, sigCh <-chan os.Signal, release func()) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	go func() {
		defer release()
		select {
		case sig := <-sigCh:
			cancel(&SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(nil) }
}

// StopSignal returns the signal that cancelled ctx, or nil.
func StopSignal(ctx context.Context) os.Signal {
	var sigErr *SignalError
	if errors.As(context.Cause(ctx), &sigErr) {
		return sigErr.Signal
	}
	return nil
}
