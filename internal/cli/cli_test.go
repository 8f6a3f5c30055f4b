package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/creational/internal/testutils"
	"github.com/aretw0/creational/pkg/computer"
	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/domain"
	"github.com/aretw0/creational/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestApp(t *testing.T, stdin string, configYAML string) *testApp {
	t.Helper()

	opts := Options{
		NoColor: true,
		Stdin:   strings.NewReader(stdin),
		Stdout:  &bytes.Buffer{},
		Stderr:  &bytes.Buffer{},
	}
	if configYAML != "" {
		opts.ConfigPath = testutils.WriteConfig(t, configYAML)
	}

	app, err := NewApp(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return &testApp{
		App:    app,
		stdout: opts.Stdout.(*bytes.Buffer),
		stderr: opts.Stderr.(*bytes.Buffer),
	}
}

func (a *testApp) lines() []string {
	return strings.Split(strings.TrimRight(a.stdout.String(), "\n"), "\n")
}

func TestRunBuilder_Default(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunBuilder(app.App, BuilderOptions{}))

	assert.Equal(t, []string{
		"Basic computer",
		"Computer configuration",
		"  CPU: Intel Core i3",
		"  RAM: 16GB",
		"  Storage: 256GB",
		"  GPU: no GPU",
		"",
		"Gamer computer",
		"Computer configuration",
		"  CPU: Intel Core i9",
		"  RAM: 64GB",
		"  Storage: 2TB M2",
		"  GPU: Nvidia RTX 5090",
	}, app.lines())
}

func TestRunBuilder_SpecAndPreset(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunBuilder(app.App, BuilderOptions{Spec: computer.Spec{CPU: "AMD Ryzen 5"}}))
	assert.Contains(t, app.lines(), "  CPU: AMD Ryzen 5")
	assert.Contains(t, app.lines(), "  RAM: "+computer.DefaultRAM)

	err := RunBuilder(app.App, BuilderOptions{Preset: "server"})
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
}

func TestRunBuilder_ConfiguredPreset(t *testing.T) {
	app := newTestApp(t, "", `
presets:
  workstation:
    cpu: AMD Threadripper
    ram: 128GB
`)

	require.NoError(t, RunBuilder(app.App, BuilderOptions{Preset: "Workstation"}))
	assert.Contains(t, app.lines(), "  CPU: AMD Threadripper")
}

func TestRunFactory_PromptsWhenSelectorMissing(t *testing.T) {
	app := newTestApp(t, "chicken\n", "")

	require.NoError(t, RunFactory(context.Background(), app.App, ""))

	// Piped input is not a terminal, so the question is not printed.
	assert.Equal(t, []string{"Preparing a ChickenHamburger 🍔🍗"}, app.lines())
}

func TestRunFactory_InvalidOption(t *testing.T) {
	app := newTestApp(t, "pork\n", "")

	err := RunFactory(context.Background(), app.App, "")
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
	assert.Contains(t, err.Error(), "chicken, beef")
	assert.Contains(t, app.stderr.String(), "selection rejected")
}

func TestRunFactory_NoInput(t *testing.T) {
	app := newTestApp(t, "", "")

	err := RunFactory(context.Background(), app.App, "")
	assert.ErrorIs(t, err, prompt.ErrNoInput)
}

func TestRunReport(t *testing.T) {
	app := newTestApp(t, " Inventory \n", "")

	require.NoError(t, RunReport(context.Background(), app.App, ""))
	require.NoError(t, RunReport(context.Background(), app.App, "management"))

	assert.Equal(t, []string{
		"Generating inventory report...",
		"Generating management report...",
	}, app.lines())
}

func TestRunAbstractFactory(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunAbstractFactory(app.App, ""))
	assert.Equal(t, []string{
		"Preparing a BeefHamburger 🍔🥩",
		"Serving a Soda 🥤",
		"Preparing a ChickenHamburger 🍔🍗",
		"Serving a Juice 🧃",
	}, app.lines())

	assert.ErrorIs(t, RunAbstractFactory(app.App, "vegan"), domain.ErrInvalidOption)
}

func TestRunVehicle(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunVehicle(app.App, ""))
	assert.Equal(t, []string{
		"Creating electric vehicle:",
		"Assembling an electric car 🚗🔋",
		"Starting electric engine 🔋",
		"",
		"Creating combustion vehicle:",
		"Assembling a combustion car 🚗⛽",
		"Starting combustion engine ⛽",
	}, app.lines())
}

func TestRunPrototype_Default(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunPrototype(context.Background(), app.App, PrototypeOptions{}))
	assert.Equal(t, []string{
		"Original document:",
		"Title: Design Patterns",
		"Content: Content about design patterns...",
		"Author: Isaac Vega",
		"",
		"Cloned document:",
		"Title: Design Patterns - Copy",
		"Content: Content about design patterns...",
		"Author: María Gómez",
	}, app.lines())

	tmpl, err := app.Engine.Template(context.Background(), "sample")
	require.NoError(t, err)
	assert.Equal(t, document.Sample(), tmpl, "cloning leaves the template untouched")
}

func TestRunPrototype_UnknownTemplate(t *testing.T) {
	app := newTestApp(t, "", "")

	err := RunPrototype(context.Background(), app.App, PrototypeOptions{Template: "missing"})
	assert.Error(t, err)
}

func TestRunExplain(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunExplain(app.App, "abstract", 80))
	assert.Contains(t, app.stdout.String(), "Abstract Factory")

	assert.ErrorIs(t, RunExplain(app.App, "singleton", 80), domain.ErrInvalidOption)
}

func TestRunTour(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunTour(context.Background(), app.App))

	out := app.stdout.String()
	for _, want := range []string{
		"== Builder ==",
		"== Factory Method ==",
		"== Abstract Factory ==",
		"== Prototype ==",
		"Preparing a BeefHamburger 🍔🥩",
		"Generating sales report...",
		"Starting combustion engine ⛽",
		"Cloned document:",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "--no-color output has no escape sequences")
}

func TestNewApp_BadLogLevel(t *testing.T) {
	_, err := NewApp(context.Background(), Options{
		LogLevel: "loud",
		Stdin:    strings.NewReader(""),
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
	})
	assert.Error(t, err)
}

func TestNewApp_MissingExplicitConfig(t *testing.T) {
	_, err := NewApp(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"),
		Stdin:      strings.NewReader(""),
		Stdout:     &bytes.Buffer{},
		Stderr:     &bytes.Buffer{},
	})
	assert.Error(t, err)
}

func TestNewApp_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	app := newTestApp(t, "", "redis:\n  address: "+mr.Addr()+"\n  prefix: \"test:\"\n")

	names, err := app.Engine.Templates(context.Background())
	require.NoError(t, err)
	assert.Contains(t, names, "sample")
	assert.True(t, mr.Exists("test:sample"))
}

func TestNewApp_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	path := testutils.WriteConfig(t, "redis:\n  address: "+addr+"\n")

	_, err := NewApp(context.Background(), Options{
		ConfigPath: path,
		Stdin:      strings.NewReader(""),
		Stdout:     &bytes.Buffer{},
		Stderr:     &bytes.Buffer{},
	})
	assert.ErrorContains(t, err, "failed to connect to redis")
}

func TestNewApp_FileStore(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp(t, "", "templates_dir: "+dir+"\n")

	_, err := os.Stat(filepath.Join(dir, "sample.yaml"))
	assert.NoError(t, err)

	require.NoError(t, RunPrototype(context.Background(), app.App, PrototypeOptions{}))
}

func TestHTTPServer_Handler(t *testing.T) {
	app := newTestApp(t, "", "")
	srv := NewHTTPServer(app.App, ":0")

	req := httptest.NewRequest(http.MethodPost, "/hamburgers", strings.NewReader(`{"type":"beef"}`))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `creational_products_created_total{pattern="factory-method",variant="beef"} 1`)
}

func TestServe_StopsOnCancel(t *testing.T) {
	app := newTestApp(t, "", "")
	srv := NewHTTPServer(app.App, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, app.App, srv) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunDiagram(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunDiagram(app.App, "meal", "Healthy"))
	out := app.stdout.String()
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "class Juice selected;")
	assert.NotContains(t, out, "class Soda selected;")

	assert.ErrorIs(t, RunDiagram(app.App, "singleton", ""), domain.ErrInvalidOption)
}

func TestServe_ListenError(t *testing.T) {
	app := newTestApp(t, "", "")
	srv := NewHTTPServer(app.App, "bad-address")

	err := Serve(context.Background(), app.App, srv)
	assert.ErrorContains(t, err, "server error")
}

func TestHTTPServer_RateLimitFromConfig(t *testing.T) {
	app := newTestApp(t, "", "server:\n  rate_limit: 1\n  rate_burst: 1\n")
	srv := NewHTTPServer(app.App, ":0")

	codes := []int{}
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patterns", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRunColors(t *testing.T) {
	app := newTestApp(t, "", "")

	require.NoError(t, RunColors(app.App))

	lines := app.lines()
	require.Len(t, lines, 12)
	assert.Equal(t, "black   #000000", lines[0])
	assert.Contains(t, lines, "orange  #f97316")
}
