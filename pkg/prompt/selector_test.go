package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanSelector(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "chicken", want: "chicken"},
		{name: "trims line ending", input: "  beef \r\n", want: "beef"},
		{name: "keeps case", input: "Healthy", want: "Healthy"},
		{name: "empty", input: "   ", want: ""},
		{name: "accented", input: "gestión", want: "gestión"},
		{name: "two words", input: "fast food", wantErr: ErrSelectorNotOneWord},
		{name: "embedded newline", input: "beef\nchicken", wantErr: ErrSelectorNotOneWord},
		{name: "embedded tab", input: "a\tb", wantErr: ErrSelectorNotOneWord},
		{name: "escape sequence", input: "be\x1b[31mef", wantErr: ErrControlCharacter},
		{name: "null byte", input: "fa\x00st", wantErr: ErrControlCharacter},
		{name: "invalid utf8", input: string([]byte{0xff, 0xfe}), wantErr: ErrInvalidUTF8},
		{name: "too long", input: strings.Repeat("a", MaxSelectorLength+1), wantErr: ErrSelectorTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanSelector(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanSelector_LimitCountsTrimmedBytes(t *testing.T) {
	word := strings.Repeat("a", MaxSelectorLength)

	got, err := CleanSelector("  " + word + "\n")
	require.NoError(t, err)
	assert.Equal(t, word, got)
}
