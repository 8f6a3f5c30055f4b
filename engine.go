package creational

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/creational/internal/logging"
	"github.com/aretw0/creational/pkg/adapters/memory"
	"github.com/aretw0/creational/pkg/burger"
	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/computer"
	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/domain"
	"github.com/aretw0/creational/pkg/meal"
	"github.com/aretw0/creational/pkg/observability"
	"github.com/aretw0/creational/pkg/ports"
	"github.com/aretw0/creational/pkg/prototype"
	"github.com/aretw0/creational/pkg/report"
	"github.com/aretw0/creational/pkg/vehicle"
)

// Engine is the high-level entry point of the catalog.
// The CLI, the HTTP server and the MCP server all drive the patterns through it,
// so they log, count and report errors the same way.
type Engine struct {
	logger    *slog.Logger
	metrics   *observability.Metrics
	store     ports.TemplateStore
	templates map[string]*document.Document
	presets   computer.Presets
	registry  *prototype.Registry
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics records every creation and rejection on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithTemplateStore sets where prototype templates live (default: memory).
func WithTemplateStore(store ports.TemplateStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithTemplates seeds the template store when the engine starts.
func WithTemplates(templates map[string]*document.Document) Option {
	return func(e *Engine) {
		e.templates = templates
	}
}

// WithPresets replaces the computer presets.
func WithPresets(presets computer.Presets) Option {
	return func(e *Engine) {
		e.presets = presets
	}
}

// Outcome is what every creation returns: the product and the lines that
// describe it.
type Outcome struct {
	Pattern domain.Pattern `json:"pattern"`
	Variant string         `json:"variant"`
	Lines   []colors.Line  `json:"lines"`
	Product any            `json:"product,omitempty"`
}

// Text returns the outcome lines as plain text.
func (o Outcome) Text() []string {
	return colors.Strings(o.Lines)
}

// New creates an engine. Without options it logs nothing, keeps templates in
// memory and seeds the "sample" document.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:  logging.NewNop(),
		presets: computer.DefaultPresets(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.store == nil {
		e.store = memory.NewStore()
	}
	if e.templates == nil {
		e.templates = map[string]*document.Document{"sample": document.Sample()}
	}

	e.registry = prototype.NewRegistry(e.store)
	if err := e.registry.Seed(ctx, e.templates); err != nil {
		return nil, fmt.Errorf("failed to seed templates: %w", err)
	}

	e.logger.Debug("engine ready", "templates", len(e.templates), "presets", len(e.presets))
	return e, nil
}

// Metrics returns the metrics recorder, or nil.
func (e *Engine) Metrics() *observability.Metrics {
	return e.metrics
}

func (e *Engine) created(p domain.Pattern, variant string) {
	e.metrics.ProductCreated(p, variant)
	e.logger.Debug("product created", "pattern", p, "variant", variant)
}

func (e *Engine) rejected(p domain.Pattern, selector string, err error) error {
	if errors.Is(err, domain.ErrInvalidOption) {
		e.metrics.SelectionRejected(p)
		e.logger.Warn("selection rejected", "pattern", p, "selector", selector, "error", err)
	}
	return err
}

// BuildComputer runs spec through the Builder.
func (e *Engine) BuildComputer(spec computer.Spec) Outcome {
	c := computer.FromSpec(spec)
	e.created(domain.PatternBuilder, "custom")
	return Outcome{
		Pattern: domain.PatternBuilder,
		Variant: "custom",
		Lines:   c.Configuration(),
		Product: c,
	}
}

// BuildPreset builds a named preset.
func (e *Engine) BuildPreset(name string) (Outcome, error) {
	c, err := e.presets.Build(name)
	if err != nil {
		return Outcome{}, e.rejected(domain.PatternBuilder, name, err)
	}
	variant := domain.NormalizeSelector(name)
	e.created(domain.PatternBuilder, variant)
	return Outcome{
		Pattern: domain.PatternBuilder,
		Variant: variant,
		Lines:   c.Configuration(),
		Product: c,
	}, nil
}

// Presets lists the computer presets.
func (e *Engine) Presets() []string {
	return e.presets.Names()
}

// OrderHamburger picks a restaurant by selector and orders from it.
func (e *Engine) OrderHamburger(selector string) (Outcome, error) {
	r, err := burger.NewRestaurant(selector)
	if err != nil {
		return Outcome{}, e.rejected(domain.PatternFactoryMethod, selector, err)
	}
	order := burger.OrderHamburger(r)
	variant := domain.NormalizeSelector(selector)
	e.created(domain.PatternFactoryMethod, variant)
	return Outcome{
		Pattern: domain.PatternFactoryMethod,
		Variant: variant,
		Lines:   []colors.Line{order.Line},
		Product: order.Hamburger.Name(),
	}, nil
}

// GenerateReport picks a report factory by selector and generates a report.
func (e *Engine) GenerateReport(selector string) (Outcome, error) {
	f, err := report.NewFactory(selector)
	if err != nil {
		return Outcome{}, e.rejected(domain.PatternFactoryMethod, selector, err)
	}
	r, line := report.GenerateReport(f)
	e.created(domain.PatternFactoryMethod, r.Kind())
	return Outcome{
		Pattern: domain.PatternFactoryMethod,
		Variant: r.Kind(),
		Lines:   []colors.Line{line},
		Product: r.Kind(),
	}, nil
}

// ServeMeal picks a restaurant family and serves its hamburger and drink.
func (e *Engine) ServeMeal(selector string) (Outcome, error) {
	f, err := meal.NewFactory(selector)
	if err != nil {
		return Outcome{}, e.rejected(domain.PatternAbstractFactory, selector, err)
	}
	m := meal.Serve(f)
	variant := domain.NormalizeSelector(selector)
	e.created(domain.PatternAbstractFactory, variant)
	return Outcome{
		Pattern: domain.PatternAbstractFactory,
		Variant: variant,
		Lines:   m.Lines(),
		Product: []string{m.Hamburger.Name(), m.Drink.Name()},
	}, nil
}

// AssembleVehicle picks a vehicle family, assembles the car and starts its engine.
func (e *Engine) AssembleVehicle(selector string) (Outcome, error) {
	f, err := vehicle.NewFactory(selector)
	if err != nil {
		return Outcome{}, e.rejected(domain.PatternAbstractFactory, selector, err)
	}
	p := vehicle.Produce(f)
	variant := domain.NormalizeSelector(selector)
	e.created(domain.PatternAbstractFactory, variant)
	return Outcome{
		Pattern: domain.PatternAbstractFactory,
		Variant: variant,
		Lines:   p.Lines(),
		Product: []string{p.Vehicle.Name(), p.Engine.Name()},
	}, nil
}

// CloneDocument clones the named template and applies the overrides to the copy.
func (e *Engine) CloneDocument(ctx context.Context, name string, o document.Overrides) (Outcome, error) {
	doc, err := e.registry.Spawn(ctx, name, o)
	if err != nil {
		if errors.Is(err, ports.ErrTemplateNotFound) {
			e.metrics.SelectionRejected(domain.PatternPrototype)
			e.logger.Warn("template not found", "name", name)
		}
		return Outcome{}, err
	}
	e.created(domain.PatternPrototype, name)
	return Outcome{
		Pattern: domain.PatternPrototype,
		Variant: name,
		Lines:   doc.Info(),
		Product: doc,
	}, nil
}

// Template returns a copy of a registered template, unchanged.
func (e *Engine) Template(ctx context.Context, name string) (*document.Document, error) {
	return e.registry.Template(ctx, name)
}

// RegisterTemplate adds or replaces a template.
func (e *Engine) RegisterTemplate(ctx context.Context, name string, doc *document.Document) error {
	if err := e.registry.Register(ctx, name, doc); err != nil {
		return err
	}
	e.logger.Info("template registered", "name", name)
	return nil
}

// Templates lists the registered templates.
func (e *Engine) Templates(ctx context.Context) ([]string, error) {
	return e.registry.Names(ctx)
}
