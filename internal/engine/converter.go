package engine

import (
	"github.com/cockroachdb/errors"

	"gdpmap/internal/dictcsv"
	"gdpmap/internal/models"
)

// BuildCountryCodeConverter reads the code file named by codeinfo and
// returns a dictionary from plot-library country codes to GDP-dataset
// country codes, both with the exact case found in the file. The last
// occurrence wins when a plot code repeats.
func BuildCountryCodeConverter(codeinfo models.CodeInfo) (map[string]string, error) {
	table, err := dictcsv.ReadFile(codeinfo.CodeFile, codeinfo.Separator, codeinfo.Quote)
	if err != nil {
		return nil, err
	}
	for _, col := range []string{codeinfo.PlotCodes, codeinfo.DataCodes} {
		if !table.HasColumn(col) {
			return nil, errors.Newf("column %q not found in %s", col, codeinfo.CodeFile)
		}
	}

	converter := make(map[string]string, len(table.Rows))
	for _, row := range table.Rows {
		converter[row[codeinfo.PlotCodes]] = row[codeinfo.DataCodes]
	}
	return converter, nil
}
