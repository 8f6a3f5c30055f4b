package meal

import (
	"testing"

	"github.com/aretw0/creational/pkg/burger"
	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilies(t *testing.T) {
	tests := []struct {
		family    string
		hamburger burger.Hamburger
		drink     Drink
		lines     []string
	}{
		{
			family:    "fast",
			hamburger: burger.BeefHamburger{},
			drink:     Soda{},
			lines:     []string{"Preparing a BeefHamburger 🍔🥩", "Serving a Soda 🥤"},
		},
		{
			family:    "healthy",
			hamburger: burger.ChickenHamburger{},
			drink:     Juice{},
			lines:     []string{"Preparing a ChickenHamburger 🍔🍗", "Serving a Juice 🧃"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			f, err := NewFactory(tt.family)
			require.NoError(t, err)

			m := Serve(f)
			assert.Equal(t, tt.hamburger, m.Hamburger)
			assert.Equal(t, tt.drink, m.Drink)
			assert.Equal(t, tt.lines, colors.Strings(m.Lines()))
		})
	}
}

func TestDrinkColors(t *testing.T) {
	assert.Equal(t, colors.Cyan, Soda{}.Pour().Color)
	assert.Equal(t, colors.Orange, Juice{}.Pour().Color)
}

func TestNewFactory_InvalidOption(t *testing.T) {
	_, err := NewFactory("vegan")
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
}
