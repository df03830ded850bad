package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"gdpmap/internal/dictcsv"
	"gdpmap/internal/models"
)

// BuildMapDictByCode joins one year of GDP data against the plot country
// table. converter must be keyed by lower-cased plot codes. Values are
// log10 of the GDP figure: the raw numbers span many orders of magnitude
// and would wash out the map's color scale otherwise.
//
// Classification per plot code: a converter target with a value for the
// year lands in Values; a target whose year field was empty is represented
// in MissingYear by its uppercased data code; any other target — including
// one that never appears in the GDP file — lands in MissingGDP. Plot codes
// without a converter entry are skipped here; ReconcileCountriesByCode
// owns that classification.
func BuildMapDictByCode(gdpinfo models.GDPInfo, converter map[string]string, plotCountries map[string]string, year string) (*models.MapResult, error) {
	table, err := dictcsv.ReadFile(gdpinfo.GDPFile, gdpinfo.Separator, gdpinfo.Quote)
	if err != nil {
		return nil, err
	}
	if !table.HasColumn(gdpinfo.CountryCode) {
		return nil, errors.Newf("column %q not found in %s", gdpinfo.CountryCode, gdpinfo.GDPFile)
	}
	if !table.HasColumn(year) {
		return nil, errors.Newf("no column for year %s in %s", year, gdpinfo.GDPFile)
	}

	// one pass over the file: country code -> GDP value for the year
	gdpData := make(map[string]float64, len(table.Rows))
	missingYear := models.NewSet()
	for _, row := range table.Rows {
		code := strings.ToUpper(row[gdpinfo.CountryCode])
		raw := row[year]
		if raw == "" {
			// expected case, not an error: the country exists but has
			// no figure for this year
			missingYear.Add(code)
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad GDP value for %s in year %s", code, year)
		}
		gdpData[code] = value
	}

	result := &models.MapResult{
		Values:      make(map[string]float64),
		MissingGDP:  models.NewSet(),
		MissingYear: missingYear,
	}
	for plot := range plotCountries {
		dataCode, ok := converter[strings.ToLower(plot)]
		if !ok {
			continue
		}
		dataCode = strings.ToUpper(dataCode)
		value, ok := gdpData[dataCode]
		switch {
		case ok:
			result.Values[plot] = math.Log10(value)
		case missingYear.Has(dataCode):
			// already represented by its data code in MissingYear
		default:
			result.MissingGDP.Add(plot)
		}
	}
	return result, nil
}
