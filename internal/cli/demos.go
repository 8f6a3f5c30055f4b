package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/creational"
	"github.com/aretw0/creational/internal/presentation/graph"
	"github.com/aretw0/creational/internal/presentation/tui"
	"github.com/aretw0/creational/pkg/burger"
	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/computer"
	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/domain"
	"github.com/aretw0/creational/pkg/meal"
	"github.com/aretw0/creational/pkg/report"
	"github.com/aretw0/creational/pkg/vehicle"
)

// BuilderOptions select what the builder demo builds. With neither field
// set, the basic and gamer computers are built.
type BuilderOptions struct {
	Preset string
	Spec   computer.Spec
}

// PrototypeOptions select the template to clone and what to change.
type PrototypeOptions struct {
	Template  string
	Overrides document.Overrides
}

// DefaultCloneOverrides is what the prototype demo changes on the copy.
var DefaultCloneOverrides = document.Overrides{
	Title:  "Design Patterns - Copy",
	Author: "María Gómez",
}

var vehicleHeadings = map[string]string{
	"electric": "Creating electric vehicle:",
	"gas":      "Creating combustion vehicle:",
}

func (a *App) print(out creational.Outcome) error {
	return a.Printer.Print(out.Lines...)
}

// RunBuilder builds computers with the Builder.
func RunBuilder(a *App, opts BuilderOptions) error {
	switch {
	case opts.Preset != "":
		out, err := a.Engine.BuildPreset(opts.Preset)
		if err != nil {
			return err
		}
		return a.print(out)
	case opts.Spec != (computer.Spec{}):
		return a.print(a.Engine.BuildComputer(opts.Spec))
	}

	demos := []struct {
		title  string
		color  colors.Color
		preset string
	}{
		{"Basic computer", colors.Green, "basic"},
		{"Gamer computer", colors.Orange, "gamer"},
	}
	for i, demo := range demos {
		if i > 0 {
			if err := a.Printer.Blank(); err != nil {
				return err
			}
		}
		out, err := a.Engine.BuildPreset(demo.preset)
		if err != nil {
			return err
		}
		if err := a.Printer.Print(colors.Styled("", demo.title, demo.color)); err != nil {
			return err
		}
		if err := a.print(out); err != nil {
			return err
		}
	}
	return nil
}

// RunFactory orders a hamburger, asking for the restaurant when selector is empty.
func RunFactory(ctx context.Context, a *App, selector string) error {
	if selector == "" {
		var err error
		selector, err = a.Prompt.Choose(ctx, "What kind of hamburger would you like?", burger.Options())
		if err != nil {
			return fmt.Errorf("failed to read selection: %w", err)
		}
	}
	out, err := a.Engine.OrderHamburger(selector)
	if err != nil {
		return err
	}
	return a.print(out)
}

// RunReport generates a report, asking for the type when selector is empty.
func RunReport(ctx context.Context, a *App, selector string) error {
	if selector == "" {
		var err error
		selector, err = a.Prompt.Choose(ctx, "What kind of report would you like?", report.Options())
		if err != nil {
			return fmt.Errorf("failed to read selection: %w", err)
		}
	}
	out, err := a.Engine.GenerateReport(selector)
	if err != nil {
		return err
	}
	return a.print(out)
}

// RunAbstractFactory serves a meal from family, or from every family when empty.
func RunAbstractFactory(a *App, family string) error {
	families := meal.Families()
	if family != "" {
		families = []string{family}
	}
	for _, f := range families {
		out, err := a.Engine.ServeMeal(f)
		if err != nil {
			return err
		}
		if err := a.print(out); err != nil {
			return err
		}
	}
	return nil
}

// RunVehicle assembles a vehicle from family, or from every family when empty.
func RunVehicle(a *App, family string) error {
	families := vehicle.Families()
	if family != "" {
		families = []string{family}
	}
	for i, f := range families {
		out, err := a.Engine.AssembleVehicle(f)
		if err != nil {
			return err
		}
		if i > 0 {
			if err := a.Printer.Blank(); err != nil {
				return err
			}
		}
		if heading, ok := vehicleHeadings[out.Variant]; ok {
			if err := a.Printer.Print(colors.Text(heading)); err != nil {
				return err
			}
		}
		if err := a.print(out); err != nil {
			return err
		}
	}
	return nil
}

// RunPrototype prints a template, clones it, changes the copy and prints it.
func RunPrototype(ctx context.Context, a *App, opts PrototypeOptions) error {
	if opts.Template == "" {
		opts.Template = "sample"
	}
	if opts.Overrides.IsZero() {
		opts.Overrides = DefaultCloneOverrides
	}

	original, err := a.Engine.Template(ctx, opts.Template)
	if err != nil {
		return fmt.Errorf("template %q: %w", opts.Template, err)
	}
	out, err := a.Engine.CloneDocument(ctx, opts.Template, opts.Overrides)
	if err != nil {
		return err
	}

	lines := []colors.Line{colors.Styled("", "Original document:", colors.Green)}
	lines = append(lines, original.Info()...)
	lines = append(lines, colors.Text(""), colors.Styled("", "Cloned document:", colors.Orange))
	lines = append(lines, out.Lines...)
	return a.Printer.Print(lines...)
}

// RunExplain renders the explanation of a pattern.
func RunExplain(a *App, id string, width int) error {
	md, err := creational.Explain(id)
	if err != nil {
		return err
	}
	render, err := tui.NewRenderer(a.Printer.Palette().Colored(), width)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render explanation: %w", err)
	}
	_, err = fmt.Fprint(a.Stdout, out)
	return err
}

// RunColors prints every named console color, painted in itself, with its
// hex value.
func RunColors(a *App) error {
	palette := a.Printer.Palette()
	for _, c := range colors.Names() {
		hex, _ := colors.Hex(c)
		if _, err := fmt.Fprintf(a.Stdout, "%s %s\n", palette.Paint(c, fmt.Sprintf("%-7s", c)), hex); err != nil {
			return err
		}
	}
	return nil
}

// RunDiagram prints the Mermaid diagram of an example. A non-empty variant
// highlights the participants that selector picks.
func RunDiagram(a *App, example, variant string) error {
	d, err := graph.Lookup(example)
	if err != nil {
		return err
	}
	var overlay *graph.Overlay
	if variant != "" {
		overlay = &graph.Overlay{Variant: domain.NormalizeSelector(variant)}
	}
	_, err = fmt.Fprint(a.Stdout, graph.GenerateMermaid(d, overlay))
	return err
}

// RunTour runs every demo without asking anything: the factory demos go
// through all of their options.
func RunTour(ctx context.Context, a *App) error {
	tui.PrintBanner(a.Stdout, a.Printer.Palette())

	steps := map[string]func() error{
		"computer": func() error { return RunBuilder(a, BuilderOptions{}) },
		"burger": func() error {
			for _, opt := range burger.Options() {
				if err := RunFactory(ctx, a, opt); err != nil {
					return err
				}
			}
			return nil
		},
		"report": func() error {
			for _, opt := range report.Options() {
				if err := RunReport(ctx, a, opt); err != nil {
					return err
				}
			}
			return nil
		},
		"meal":     func() error { return RunAbstractFactory(a, "") },
		"vehicle":  func() error { return RunVehicle(a, "") },
		"document": func() error { return RunPrototype(ctx, a, PrototypeOptions{}) },
	}

	for _, info := range creational.Patterns() {
		title := fmt.Sprintf("== %s ==", info.Name)
		if err := a.Printer.Print(colors.Styled("", title, colors.Cyan)); err != nil {
			return err
		}
		for _, example := range info.Examples {
			step, ok := steps[example]
			if !ok {
				continue
			}
			if err := step(); err != nil {
				return fmt.Errorf("%s: %w", info.Name, err)
			}
		}
		if err := a.Printer.Blank(); err != nil {
			return err
		}
	}
	return nil
}
