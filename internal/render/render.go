// Package render ties the pipeline together: read configs, build the
// per-year GDP join, hand the three data groups to the world map.
package render

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gdpmap/internal/engine"
	"gdpmap/internal/models"
	"gdpmap/internal/worldmap"
)

// WorldMap builds the GDP map for one year and writes an SVG world
// choropleth to mapFile. On any error nothing is written.
func WorldMap(gdpinfo models.GDPInfo, codeinfo models.CodeInfo, plotCountries map[string]string, year, mapFile string) error {
	converter, err := engine.BuildCountryCodeConverter(codeinfo)
	if err != nil {
		return err
	}
	// the mapper wants the converter keyed by lower-cased plot codes
	folded := make(map[string]string, len(converter))
	for plot, data := range converter {
		folded[strings.ToLower(plot)] = data
	}

	result, err := engine.BuildMapDictByCode(gdpinfo, folded, plotCountries, year)
	if err != nil {
		return err
	}
	zap.S().Infow("gdp map built",
		"year", year,
		"countries", len(result.Values),
		"missing_gdp", len(result.MissingGDP),
		"missing_year", len(result.MissingYear),
	)

	world := worldmap.New()
	world.Title = fmt.Sprintf("GDP by Country for %s (Logarithmic Scale)", year)
	world.AddValues("GDP Data Available", result.Values)
	world.AddCodes("Missing GDP Data", result.MissingGDP.List())
	world.AddCodes("Missing Year Data", result.MissingYear.List())
	return world.RenderToFile(mapFile)
}
