package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/creational"
	"github.com/aretw0/creational/internal/config"
	"github.com/aretw0/creational/internal/logging"
	"github.com/aretw0/creational/pkg/adapters/file"
	"github.com/aretw0/creational/pkg/adapters/memory"
	"github.com/aretw0/creational/pkg/adapters/redis"
	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/observability"
	"github.com/aretw0/creational/pkg/ports"
	"github.com/aretw0/creational/pkg/prompt"
	"github.com/muesli/termenv"
)

// Options are the global flags shared by every command.
type Options struct {
	ConfigPath string
	// LogLevel overrides the level from the config file when set.
	LogLevel string
	NoColor  bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// App holds everything a command needs, built once from Options.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics
	Engine  *creational.Engine
	Printer *colors.Printer
	Prompt  *prompt.TextHandler
	Stdout  io.Writer

	closers []io.Closer
}

// NewApp loads the configuration and wires the engine with standard CLI conventions.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logger, err := createLogger(opts, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewMetrics(),
		Printer: colors.NewPrinter(opts.Stdout, paletteOptions(opts, cfg)...),
		Prompt:  prompt.NewTextHandler(opts.Stdin, opts.Stdout),
		Stdout:  opts.Stdout,
	}

	store, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}

	engine, err := creational.New(ctx,
		creational.WithLogger(logger),
		creational.WithMetrics(app.Metrics),
		creational.WithTemplateStore(store),
		creational.WithTemplates(cfg.DocumentTemplates()),
		creational.WithPresets(cfg.ComputerPresets()),
	)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	app.Engine = engine
	return app, nil
}

// Close releases the template store connection, if any.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

// openStore picks redis, then a template directory, then memory.
func (a *App) openStore(ctx context.Context) (ports.TemplateStore, error) {
	cfg := a.Config
	switch {
	case cfg.Redis.Address != "":
		var redisOpts []redis.Option
		if cfg.Redis.Prefix != "" {
			redisOpts = append(redisOpts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			redisOpts = append(redisOpts, redis.WithTTL(cfg.Redis.TTL))
		}
		store := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, redisOpts...)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Address, err)
		}
		a.closers = append(a.closers, store)
		a.Logger.Info("templates stored in redis", "address", cfg.Redis.Address, "db", cfg.Redis.DB)
		return store, nil
	case cfg.TemplatesDir != "":
		a.Logger.Info("templates stored on disk", "dir", cfg.TemplatesDir)
		return file.New(cfg.TemplatesDir), nil
	default:
		return memory.NewStore(), nil
	}
}

// createLogger writes to stderr so stdout stays reserved for demo output.
func createLogger(opts Options, cfg *config.Config) (*slog.Logger, error) {
	name := cfg.LogLevel
	if opts.LogLevel != "" {
		name = opts.LogLevel
	}
	return logging.FromLevelName(opts.Stderr, name)
}

func paletteOptions(opts Options, cfg *config.Config) []colors.Option {
	if opts.NoColor || os.Getenv("NO_COLOR") != "" {
		return []colors.Option{colors.WithoutColor()}
	}
	switch cfg.Color {
	case config.ColorNever:
		return []colors.Option{colors.WithoutColor()}
	case config.ColorAlways:
		return []colors.Option{colors.WithProfile(termenv.TrueColor)}
	}
	return nil
}
