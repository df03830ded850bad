package engine

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdpmap/internal/models"
)

func gdpInfoFor(path string) models.GDPInfo {
	return models.GDPInfo{
		GDPFile:     path,
		Separator:   ',',
		Quote:       '"',
		CountryCode: "Country Code",
	}
}

func TestBuildMapDictByCode_LogScaling(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Country Code,2019,2020\nUSA,900000000,1000000000\n")

	result, err := BuildMapDictByCode(gdpInfoFor(path),
		map[string]string{"us": "USA"},
		map[string]string{"us": "United States"},
		"2020")
	require.NoError(t, err)

	require.Contains(t, result.Values, "us")
	assert.InDelta(t, 9.0, result.Values["us"], 1e-12)
	assert.Empty(t, result.MissingGDP)
	assert.Empty(t, result.MissingYear)
}

func TestBuildMapDictByCode_EmptyYearIsMissingYear(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Country Code,2019,2020\nFRA,2400000000000,\n")

	result, err := BuildMapDictByCode(gdpInfoFor(path),
		map[string]string{"fr": "FRA"},
		map[string]string{"fr": "France"},
		"2020")
	require.NoError(t, err)

	assert.True(t, result.MissingYear.Has("FRA"))
	assert.NotContains(t, result.Values, "fr")
	// the data code already carries the classification; the plot code
	// must not also show up as missing GDP
	assert.False(t, result.MissingGDP.Has("fr"))
}

// A converter target that never appears in the GDP file at all is counted
// as missing GDP data rather than silently dropped.
func TestBuildMapDictByCode_CodeNeverInGDPFile(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Country Code,2020\nUSA,1000000000\n")

	result, err := BuildMapDictByCode(gdpInfoFor(path),
		map[string]string{"fr": "FRA", "us": "USA"},
		map[string]string{"fr": "France", "us": "United States"},
		"2020")
	require.NoError(t, err)

	assert.True(t, result.MissingGDP.Has("fr"))
	assert.NotContains(t, result.Values, "fr")
	assert.False(t, result.MissingYear.Has("FRA"))
}

func TestBuildMapDictByCode_PlotCodeWithoutConverterEntry(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Country Code,2020\nUSA,1000000000\n")

	result, err := BuildMapDictByCode(gdpInfoFor(path),
		map[string]string{"us": "USA"},
		map[string]string{"us": "United States", "xx": "Nowhere"},
		"2020")
	require.NoError(t, err)

	// the reconcile step reports unknown plot codes; the mapper leaves
	// them out of every group
	assert.NotContains(t, result.Values, "xx")
	assert.False(t, result.MissingGDP.Has("xx"))
}

func TestBuildMapDictByCode_CaseInsensitiveDataCode(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Country Code,2020\nfra,2500000000000\n")

	result, err := BuildMapDictByCode(gdpInfoFor(path),
		map[string]string{"fr": "Fra"},
		map[string]string{"fr": "France"},
		"2020")
	require.NoError(t, err)

	require.Contains(t, result.Values, "fr")
	assert.InDelta(t, math.Log10(2.5e12), result.Values["fr"], 1e-12)
}

func TestBuildMapDictByCode_ExclusiveClassification(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Country Code,2020\nUSA,1000000000\nFRA,\n")

	converter := map[string]string{"us": "USA", "fr": "FRA", "de": "DEU"}
	plot := map[string]string{"us": "United States", "fr": "France", "de": "Germany", "xx": "Nowhere"}

	result, err := BuildMapDictByCode(gdpInfoFor(path), converter, plot, "2020")
	require.NoError(t, err)

	for code := range plot {
		groups := 0
		if _, ok := result.Values[code]; ok {
			groups++
		}
		if result.MissingGDP.Has(code) {
			groups++
		}
		assert.LessOrEqual(t, groups, 1, "plot code %q in more than one group", code)
	}
	assert.Contains(t, result.Values, "us")
	assert.True(t, result.MissingYear.Has("FRA"))
	assert.True(t, result.MissingGDP.Has("de"))
}

func TestBuildMapDictByCode_YearColumnMissing(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Country Code,2019\nUSA,1000000000\n")

	_, err := BuildMapDictByCode(gdpInfoFor(path), nil, nil, "2020")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2020")
}

func TestBuildMapDictByCode_CountryCodeColumnMissing(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Code,2020\nUSA,1000000000\n")

	_, err := BuildMapDictByCode(gdpInfoFor(path), nil, nil, "2020")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Country Code")
}

func TestBuildMapDictByCode_BadValue(t *testing.T) {
	path := writeTemp(t, "gdp.csv", "Country Code,2020\nUSA,not-a-number\n")

	_, err := BuildMapDictByCode(gdpInfoFor(path), nil, nil, "2020")
	require.Error(t, err)
}

func TestBuildMapDictByCode_MissingFile(t *testing.T) {
	_, err := BuildMapDictByCode(gdpInfoFor(filepath.Join(t.TempDir(), "nope.csv")), nil, nil, "2020")
	require.Error(t, err)
}
