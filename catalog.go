package creational

import (
	"embed"
	"fmt"

	"github.com/aretw0/creational/pkg/domain"
)

//go:embed docs/patterns/*.md
var explanations embed.FS

// PatternInfo describes one entry of the catalog.
type PatternInfo struct {
	ID        domain.Pattern `json:"id"`
	Name      string         `json:"name"`
	Summary   string         `json:"summary"`
	Examples  []string       `json:"examples"`
	Reference string         `json:"reference"`
}

var catalog = []PatternInfo{
	{
		ID:        domain.PatternBuilder,
		Name:      "Builder",
		Summary:   "Construct a complex object step by step with chained setters and a final build step.",
		Examples:  []string{"computer"},
		Reference: "https://refactoring.guru/design-patterns/builder",
	},
	{
		ID:        domain.PatternFactoryMethod,
		Name:      "Factory Method",
		Summary:   "Defer the creation step to an implementation selected at runtime.",
		Examples:  []string{"burger", "report"},
		Reference: "https://refactoring.guru/design-patterns/factory-method",
	},
	{
		ID:        domain.PatternAbstractFactory,
		Name:      "Abstract Factory",
		Summary:   "Group related creation steps behind one interface and instantiate them as a family.",
		Examples:  []string{"meal", "vehicle"},
		Reference: "https://refactoring.guru/design-patterns/abstract-factory",
	},
	{
		ID:        domain.PatternPrototype,
		Name:      "Prototype",
		Summary:   "Produce a new, independent instance by copying an existing one.",
		Examples:  []string{"document"},
		Reference: "https://refactoring.guru/design-patterns/prototype",
	},
}

// Patterns returns the catalog in presentation order.
func Patterns() []PatternInfo {
	out := make([]PatternInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by identifier or alias.
func Lookup(id string) (PatternInfo, error) {
	p, err := domain.ParsePattern(id)
	if err != nil {
		return PatternInfo{}, err
	}
	for _, info := range catalog {
		if info.ID == p {
			return info, nil
		}
	}
	return PatternInfo{}, domain.NewInvalidOption("", id)
}

// Explain returns the markdown explanation of a pattern.
func Explain(id string) (string, error) {
	info, err := Lookup(id)
	if err != nil {
		return "", err
	}
	data, err := explanations.ReadFile(fmt.Sprintf("docs/patterns/%s.md", info.ID))
	if err != nil {
		return "", fmt.Errorf("missing explanation for %s: %w", info.ID, err)
	}
	return string(data), nil
}
