package linebreak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverflows(t *testing.T) {
	tests := []struct {
		name     string
		m        Measure
		width    int
		fraction float64
		want     bool
	}{
		{
			name:     "fits",
			m:        Measure{Args: 10, Location: 20, Arrow: 5, Label: 5, End: 0},
			width:    80,
			fraction: 0.9,
			want:     false,
		},
		{
			name:     "just below the threshold",
			m:        Measure{Args: 71},
			width:    80,
			fraction: 0.9,
			want:     false,
		},
		{
			name:     "one past the threshold",
			m:        Measure{Args: 70, End: 3},
			width:    80,
			fraction: 0.9,
			want:     true,
		},
		{
			name:     "full width fraction",
			m:        Measure{Args: 80},
			width:    80,
			fraction: 1,
			want:     false,
		},
		{
			name:     "narrow terminal",
			m:        Measure{Args: 2, Location: 12, Arrow: 5, Label: 5},
			width:    20,
			fraction: 0.9,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overflows(tt.m, tt.width, tt.fraction))
		})
	}
}

func TestMeasure_Total(t *testing.T) {
	m := Measure{Args: 1, Location: 2, Arrow: 3, Label: 4, End: 5}
	assert.Equal(t, 15, m.Total())
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 5, Width("hello"))
	assert.Equal(t, 5, Width("\x1b[1;36mhello\x1b[0m"), "escape sequences take no columns")
	assert.Equal(t, 4, Width("日本"), "wide runes take two columns")
}

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs([]string{"()", "<>", "«»"})
	require.NoError(t, err)
	assert.Equal(t, []Pair{{'(', ')'}, {'<', '>'}, {'«', '»'}}, pairs)
	assert.Equal(t, "«»", pairs[2].String())

	_, err = ParsePairs([]string{"("})
	assert.Error(t, err)

	_, err = ParsePairs([]string{"(]]"})
	assert.Error(t, err)

	_, err = ParsePairs([]string{"||"})
	assert.Error(t, err)
}
