package cli

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOnSignal_RecordsSignal(t *testing.T) {
	sigCh := make(chan os.Signal, 1)
	released := make(chan struct{})
	ctx, stop := cancelOnSignal(context.Background(), sigCh, func() { close(released) })
	defer stop()

	sigCh <- syscall.SIGTERM

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}
	<-released

	assert.Equal(t, syscall.SIGTERM, StopSignal(ctx))
	var sigErr *SignalError
	require.ErrorAs(t, context.Cause(ctx), &sigErr)
	assert.Equal(t, "received signal: terminated", sigErr.Error())
}

func TestCancelOnSignal_Stop(t *testing.T) {
	released := make(chan struct{})
	ctx, stop := cancelOnSignal(context.Background(), make(chan os.Signal), func() { close(released) })

	stop()
	<-ctx.Done()
	<-released

	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
	assert.Nil(t, StopSignal(ctx))
}

func TestServe_StopsOnSignal(t *testing.T) {
	app := newTestApp(t, "", "log_level: info\n")
	srv := NewHTTPServer(app.App, "127.0.0.1:0")

	sigCh := make(chan os.Signal, 1)
	ctx, stop := cancelOnSignal(context.Background(), sigCh, func() {})
	defer stop()

	done := make(chan error, 1)
	go func() { done <- Serve(ctx, app.App, srv) }()
	sigCh <- os.Interrupt

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
	assert.Contains(t, app.stderr.String(), "received signal: interrupt")
}
