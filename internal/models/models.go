package models

// CodeInfo describes a country-code mapping file: which file to read and
// which two columns hold the plot-library code and the GDP dataset code.
type CodeInfo struct {
	CodeFile  string
	Separator rune
	Quote     rune
	PlotCodes string // column with the plot library's country codes
	DataCodes string // column with the GDP dataset's country codes
}

// GDPInfo describes a GDP data file. Every column other than CountryCode
// is treated as a year label holding one GDP value per country.
type GDPInfo struct {
	GDPFile     string
	Separator   rune
	Quote       rune
	CountryCode string
}

// Set is a plain string set used for the missing-data groups.
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s.Add(it)
	}
	return s
}

func (s Set) Add(item string) { s[item] = struct{}{} }

func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// List returns the members in unspecified order.
func (s Set) List() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	return out
}

// MapResult is the outcome of joining one year of GDP data against the
// plot country table.
type MapResult struct {
	// Values maps plot country codes to log10 of that country's GDP.
	Values map[string]float64
	// MissingGDP holds plot codes whose mapped data code has no GDP
	// value for the year (or never appears in the GDP file at all).
	MissingGDP Set
	// MissingYear holds uppercased data codes that appear in the GDP
	// file but have an empty field for the requested year.
	MissingYear Set
}
