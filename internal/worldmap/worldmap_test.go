package worldmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountries(t *testing.T) {
	table := Countries()
	require.NotEmpty(t, table)
	assert.Equal(t, "France", table["fr"])
	assert.Equal(t, "United States", table["us"])

	// callers get a copy, not the backing table
	table["fr"] = "mutated"
	assert.Equal(t, "France", Countries()["fr"])
}

func TestRenderToFile(t *testing.T) {
	w := New()
	w.Title = "GDP by Country for 2020 (Logarithmic Scale)"
	w.AddValues("GDP Data Available", map[string]float64{"fr": 12.4, "us": 13.3, "de": 12.6})
	w.AddCodes("Missing GDP Data", []string{"gl"})
	w.AddCodes("Missing Year Data", []string{"FRA"}) // unknown to the map, tolerated

	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, w.RenderToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"), "output is not an SVG")
}

func TestRenderToFile_EmptyGroups(t *testing.T) {
	w := New()
	w.Title = "empty"
	w.AddValues("GDP Data Available", map[string]float64{})
	w.AddCodes("Missing GDP Data", nil)

	path := filepath.Join(t.TempDir(), "empty.svg")
	require.NoError(t, w.RenderToFile(path))
}

func TestValueRange(t *testing.T) {
	lo, hi := valueRange([]float64{12.4, 9.0, 13.3})
	assert.Equal(t, 9.0, lo)
	assert.Equal(t, 13.3, hi)

	lo, hi = valueRange(nil)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.5, normalize(10, 5, 15))
	// degenerate range draws at full color
	assert.Equal(t, 1.0, normalize(7, 7, 7))
}
