package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gdpmap/internal/config"
	"gdpmap/internal/render"
	"gdpmap/internal/worldmap"
)

var (
	configPath string
	years      []string
	outPattern string
)

var rootCmd = &cobra.Command{
	Use:   "gdpmap",
	Short: "Render world GDP choropleth maps from delimited data files",
	Long: `gdpmap joins a GDP time-series file with a country-code mapping
file and renders one SVG world map per requested year. Countries are
shaded by log10 of their GDP; countries without usable data get their
own legend groups.

Example:
  gdpmap --config gdpmap.toml --year 1960 --year 2020 --out world_gdp_{year}.svg`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "gdpmap.toml", "TOML file naming the GDP and code files")
	rootCmd.Flags().StringSliceVarP(&years, "year", "y", nil, "year to render (repeatable)")
	rootCmd.Flags().StringVarP(&outPattern, "out", "o", "world_gdp_{year}.svg", "output filename; {year} is substituted")
	_ = rootCmd.MarkFlagRequired("year")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	codeinfo, gdpinfo, err := config.Load(configPath)
	if err != nil {
		return err
	}

	plotCountries := worldmap.Countries()
	for _, year := range years {
		out := strings.ReplaceAll(outPattern, "{year}", year)
		if err := render.WorldMap(gdpinfo, codeinfo, plotCountries, year, out); err != nil {
			return err
		}
		zap.S().Infow("map rendered", "year", year, "file", out)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
