// Package config loads the TOML file that names the input files and their
// column layout.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"gdpmap/internal/models"
)

type fileSpec struct {
	CodeInfo codeInfoTOML `toml:"codeinfo"`
	GDPInfo  gdpInfoTOML  `toml:"gdpinfo"`
}

type codeInfoTOML struct {
	CodeFile  string `toml:"codefile"`
	Separator string `toml:"separator"`
	Quote     string `toml:"quote"`
	PlotCodes string `toml:"plot_codes"`
	DataCodes string `toml:"data_codes"`
}

type gdpInfoTOML struct {
	GDPFile     string `toml:"gdpfile"`
	Separator   string `toml:"separator"`
	Quote       string `toml:"quote"`
	CountryCode string `toml:"country_code"`
}

// Load reads a TOML config holding a [codeinfo] and a [gdpinfo] table.
// Separator defaults to "," and quote to `"`; both must be exactly one
// character.
func Load(path string) (models.CodeInfo, models.GDPInfo, error) {
	var spec fileSpec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return models.CodeInfo{}, models.GDPInfo{}, errors.Wrapf(err, "load config %s", path)
	}

	for field, value := range map[string]string{
		"codeinfo.codefile":    spec.CodeInfo.CodeFile,
		"codeinfo.plot_codes":  spec.CodeInfo.PlotCodes,
		"codeinfo.data_codes":  spec.CodeInfo.DataCodes,
		"gdpinfo.gdpfile":      spec.GDPInfo.GDPFile,
		"gdpinfo.country_code": spec.GDPInfo.CountryCode,
	} {
		if value == "" {
			return models.CodeInfo{}, models.GDPInfo{}, errors.Newf("%s: missing %s", path, field)
		}
	}

	codeSep, err := oneRune("codeinfo.separator", spec.CodeInfo.Separator, ',')
	if err != nil {
		return models.CodeInfo{}, models.GDPInfo{}, err
	}
	codeQuote, err := oneRune("codeinfo.quote", spec.CodeInfo.Quote, '"')
	if err != nil {
		return models.CodeInfo{}, models.GDPInfo{}, err
	}
	gdpSep, err := oneRune("gdpinfo.separator", spec.GDPInfo.Separator, ',')
	if err != nil {
		return models.CodeInfo{}, models.GDPInfo{}, err
	}
	gdpQuote, err := oneRune("gdpinfo.quote", spec.GDPInfo.Quote, '"')
	if err != nil {
		return models.CodeInfo{}, models.GDPInfo{}, err
	}

	codeinfo := models.CodeInfo{
		CodeFile:  spec.CodeInfo.CodeFile,
		Separator: codeSep,
		Quote:     codeQuote,
		PlotCodes: spec.CodeInfo.PlotCodes,
		DataCodes: spec.CodeInfo.DataCodes,
	}
	gdpinfo := models.GDPInfo{
		GDPFile:     spec.GDPInfo.GDPFile,
		Separator:   gdpSep,
		Quote:       gdpQuote,
		CountryCode: spec.GDPInfo.CountryCode,
	}
	return codeinfo, gdpinfo, nil
}

func oneRune(field, s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, errors.Newf("%s must be a single character, got %q", field, s)
	}
	return runes[0], nil
}
