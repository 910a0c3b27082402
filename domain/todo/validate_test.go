package todo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		want    string
		wantErr error
	}{
		{"simple", "Buy milk", "Buy milk", nil},
		{"trimmed", "  Buy milk  ", "Buy milk", nil},
		{"single char", "x", "x", nil},
		{"empty", "", "", ErrTitleRequired},
		{"whitespace only", "   \t ", "", ErrTitleRequired},
		{"exactly 100 chars", strings.Repeat("a", 100), strings.Repeat("a", 100), nil},
		{"101 chars", strings.Repeat("a", 101), "", ErrTitleTooLong},
		{"100 chars after trim", "  " + strings.Repeat("a", 100) + "  ", strings.Repeat("a", 100), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTitle(tt.title)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTitle_CountsRunesNotBytes(t *testing.T) {
	// 100 multi-byte runes are within the limit even though the byte
	// length exceeds it.
	title := strings.Repeat("ü", 100)
	got, err := NormalizeTitle(title)
	require.NoError(t, err)
	assert.Equal(t, title, got)
}

func TestNormalizeDescription(t *testing.T) {
	ok, err := NormalizeDescription("  a longer explanation  ")
	require.NoError(t, err)
	assert.Equal(t, "a longer explanation", ok)

	_, err = NormalizeDescription(strings.Repeat("d", 501))
	require.ErrorIs(t, err, ErrDescriptionTooLong)

	atLimit, err := NormalizeDescription(strings.Repeat("d", 500))
	require.NoError(t, err)
	assert.Len(t, atLimit, 500)
}
