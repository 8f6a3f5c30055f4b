package computer

import (
	"testing"

	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Defaults(t *testing.T) {
	c := NewBuilder().Build()

	assert.Equal(t, DefaultCPU, c.CPU)
	assert.Equal(t, DefaultRAM, c.RAM)
	assert.Equal(t, DefaultStorage, c.Storage)
	assert.Empty(t, c.GPU)
	assert.False(t, c.HasGPU())
}

func TestBuilder_Chained(t *testing.T) {
	c := NewBuilder().
		SetCPU("AMD Ryzen 7").
		SetRAM("32GB").
		SetStorage("1TB").
		SetGPU("Radeon RX 7800").
		Build()

	assert.Equal(t, Computer{CPU: "AMD Ryzen 7", RAM: "32GB", Storage: "1TB", GPU: "Radeon RX 7800"}, c)
	assert.True(t, c.HasGPU())
}

func TestBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewBuilder().SetCPU("Intel Core i5")
	first := b.Build()

	b.SetCPU("Intel Core i7")
	second := b.Build()

	assert.Equal(t, "Intel Core i5", first.CPU)
	assert.Equal(t, "Intel Core i7", second.CPU)
}

func TestPresets(t *testing.T) {
	basic := Basic()
	assert.Equal(t, "Intel Core i3", basic.CPU)
	assert.Equal(t, "16GB", basic.RAM)
	assert.Equal(t, "256GB", basic.Storage)
	assert.False(t, basic.HasGPU())

	gamer := Gamer()
	assert.Equal(t, "Intel Core i9", gamer.CPU)
	assert.Equal(t, "64GB", gamer.RAM)
	assert.Equal(t, "2TB M2", gamer.Storage)
	assert.Equal(t, "Nvidia RTX 5090", gamer.GPU)

	got, err := Preset(" Gamer ")
	require.NoError(t, err)
	assert.Equal(t, gamer, got)

	_, err = Preset("server")
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
	assert.Equal(t, []string{"basic", "gamer"}, DefaultPresets().Names())
}

func TestFromSpec_KeepsDefaultsForEmptyFields(t *testing.T) {
	c := FromSpec(Spec{CPU: "Apple M3"})

	assert.Equal(t, "Apple M3", c.CPU)
	assert.Equal(t, DefaultRAM, c.RAM)
	assert.Equal(t, DefaultStorage, c.Storage)
	assert.False(t, c.HasGPU())
}

func TestConfiguration(t *testing.T) {
	assert.Equal(t, []string{
		"Computer configuration",
		"  CPU: Intel Core i3",
		"  RAM: 16GB",
		"  Storage: 256GB",
		"  GPU: no GPU",
	}, colors.Strings(Basic().Configuration()))

	lines := colors.Strings(Gamer().Configuration())
	assert.Equal(t, "  GPU: Nvidia RTX 5090", lines[len(lines)-1])
}
