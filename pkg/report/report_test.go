package report

import (
	"testing"

	"github.com/aretw0/creational/pkg/colors"
	"github.com/aretw0/creational/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactory(t *testing.T) {
	tests := []struct {
		selector string
		kind     string
		line     string
		color    colors.Color
	}{
		{"sales", "sales", "Generating sales report...", colors.Green},
		{"inventory", "inventory", "Generating inventory report...", colors.Yellow},
		{"management", "management", "Generating management report...", colors.Purple},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			f, err := NewFactory(tt.selector)
			require.NoError(t, err)

			r, line := GenerateReport(f)
			assert.Equal(t, tt.kind, r.Kind())
			assert.Equal(t, tt.line, line.String())
			assert.Equal(t, tt.color, line.Color)
		})
	}
}

func TestNewFactory_InvalidOption(t *testing.T) {
	_, err := NewFactory("payroll")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
	assert.Contains(t, err.Error(), "sales, inventory, management")
}
