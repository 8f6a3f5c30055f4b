// Package computer demonstrates the Builder pattern.
//
// A Builder accumulates a computer configuration across chained calls and
// produces the assembled Computer with Build.
package computer

import (
	"github.com/aretw0/creational/pkg/colors"
)

// Placeholders used for parts that were never configured.
const (
	DefaultCPU     = "cpu - not defined"
	DefaultRAM     = "ram - not defined"
	DefaultStorage = "storage - not defined"
	NoGPU          = "no GPU"
)

// Computer is the product assembled by a Builder.
// GPU is optional: an empty value means the computer has none.
type Computer struct {
	CPU     string `json:"cpu"`
	RAM     string `json:"ram"`
	Storage string `json:"storage"`
	GPU     string `json:"gpu,omitempty"`
}

// HasGPU reports whether a GPU was configured.
func (c Computer) HasGPU() bool {
	return c.GPU != ""
}

// Configuration describes the computer, one part per line.
func (c Computer) Configuration() []colors.Line {
	gpu := c.GPU
	if gpu == "" {
		gpu = NoGPU
	}
	return []colors.Line{
		colors.Text("Computer configuration"),
		colors.Textf("  CPU: %s", c.CPU),
		colors.Textf("  RAM: %s", c.RAM),
		colors.Textf("  Storage: %s", c.Storage),
		colors.Textf("  GPU: %s", gpu),
	}
}
