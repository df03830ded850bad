package engine

import (
	"strings"

	"gdpmap/internal/models"
)

// foldIndex maps case-folded keys back to their original spelling. Both
// the reconciler and the mapper join identifier sets that mix case
// conventions; matching happens on the folded form, outputs keep the
// original form.
type foldIndex map[string]string

func foldKeys[V any](m map[string]V) foldIndex {
	idx := make(foldIndex, len(m))
	for k := range m {
		idx[strings.ToLower(k)] = k
	}
	return idx
}

// ReconcileCountriesByCode matches every plot-library country code against
// the GDP dataset's code set, routed through the code file's converter.
// It returns the plot-code to GDP-code mapping (original case on both
// sides) and the set of plot codes with no case-insensitive match.
func ReconcileCountriesByCode(codeinfo models.CodeInfo, plotCountries map[string]string, gdpCountries models.Set) (map[string]string, models.Set, error) {
	converter, err := BuildCountryCodeConverter(codeinfo)
	if err != nil {
		return nil, nil, err
	}

	gdpIdx := foldKeys(gdpCountries)
	convFold := make(map[string]string, len(converter))
	for plot, data := range converter {
		convFold[strings.ToLower(plot)] = strings.ToLower(data)
	}

	mapping := make(map[string]string, len(plotCountries))
	missing := models.NewSet()
	for plot := range plotCountries {
		dataFold, ok := convFold[strings.ToLower(plot)]
		if !ok {
			// the code file has never heard of this country
			missing.Add(plot)
			continue
		}
		gdpCode, ok := gdpIdx[dataFold]
		if !ok {
			missing.Add(plot)
			continue
		}
		mapping[plot] = gdpCode
	}
	return mapping, missing, nil
}
