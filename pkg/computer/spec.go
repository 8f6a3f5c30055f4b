package computer

import (
	"sort"

	"github.com/aretw0/creational/pkg/domain"
)

// Spec is the declarative form of a build, as found in config files and
// API requests. Empty fields keep the builder defaults.
type Spec struct {
	CPU     string `json:"cpu,omitempty" yaml:"cpu" mapstructure:"cpu"`
	RAM     string `json:"ram,omitempty" yaml:"ram" mapstructure:"ram"`
	Storage string `json:"storage,omitempty" yaml:"storage" mapstructure:"storage"`
	GPU     string `json:"gpu,omitempty" yaml:"gpu" mapstructure:"gpu"`
}

// FromSpec runs spec through a Builder.
func FromSpec(spec Spec) Computer {
	b := NewBuilder()
	if spec.CPU != "" {
		b.SetCPU(spec.CPU)
	}
	if spec.RAM != "" {
		b.SetRAM(spec.RAM)
	}
	if spec.Storage != "" {
		b.SetStorage(spec.Storage)
	}
	if spec.GPU != "" {
		b.SetGPU(spec.GPU)
	}
	return b.Build()
}

// Basic is an entry level office computer without a GPU.
func Basic() Computer {
	return NewBuilder().
		SetCPU("Intel Core i3").
		SetRAM("16GB").
		SetStorage("256GB").
		Build()
}

// Gamer is a high end computer with a dedicated GPU.
func Gamer() Computer {
	return NewBuilder().
		SetCPU("Intel Core i9").
		SetRAM("64GB").
		SetStorage("2TB M2").
		SetGPU("Nvidia RTX 5090").
		Build()
}

// Presets is a named set of build specs.
type Presets map[string]Spec

// DefaultPresets returns the built-in presets.
func DefaultPresets() Presets {
	return Presets{
		"basic": specOf(Basic()),
		"gamer": specOf(Gamer()),
	}
}

// Names returns the preset names, sorted.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves a preset by name and builds it.
func (p Presets) Build(name string) (Computer, error) {
	spec, ok := p[domain.NormalizeSelector(name)]
	if !ok {
		return Computer{}, domain.NewInvalidOption(domain.PatternBuilder, name, p.Names()...)
	}
	return FromSpec(spec), nil
}

// Preset builds one of the default presets.
func Preset(name string) (Computer, error) {
	return DefaultPresets().Build(name)
}

func specOf(c Computer) Spec {
	return Spec{CPU: c.CPU, RAM: c.RAM, Storage: c.Storage, GPU: c.GPU}
}
