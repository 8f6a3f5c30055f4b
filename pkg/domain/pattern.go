package domain

// Pattern identifies one of the creational patterns in the catalog.
type Pattern string

const (
	PatternBuilder         Pattern = "builder"
	PatternFactoryMethod   Pattern = "factory-method"
	PatternAbstractFactory Pattern = "abstract-factory"
	PatternPrototype       Pattern = "prototype"
)

// Patterns returns every pattern in catalog order.
func Patterns() []Pattern {
	return []Pattern{PatternBuilder, PatternFactoryMethod, PatternAbstractFactory, PatternPrototype}
}

// ParsePattern resolves a pattern identifier. Short aliases are accepted
// ("factory", "abstract").
func ParsePattern(s string) (Pattern, error) {
	switch NormalizeSelector(s) {
	case "builder":
		return PatternBuilder, nil
	case "factory-method", "factory":
		return PatternFactoryMethod, nil
	case "abstract-factory", "abstract":
		return PatternAbstractFactory, nil
	case "prototype":
		return PatternPrototype, nil
	default:
		return "", NewInvalidOption("", s, "builder", "factory-method", "abstract-factory", "prototype")
	}
}
