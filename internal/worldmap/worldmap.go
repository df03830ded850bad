// Package worldmap renders world choropleth plots. The API mirrors the
// usual map-plotting libraries: create a World, set a title, add named
// data groups, render to a file.
package worldmap

import (
	"image/color"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// group is one legend entry: either countries shaded by value, or a plain
// membership list drawn in a flat color.
type group struct {
	label   string
	values  map[string]float64
	members []string
}

// World is a world choropleth under construction.
type World struct {
	Title  string
	groups []group
}

func New() *World { return &World{} }

// AddValues adds a group whose countries are shaded by their value.
func (w *World) AddValues(label string, values map[string]float64) {
	w.groups = append(w.groups, group{label: label, values: values})
}

// AddCodes adds a membership-only group drawn in a flat color. Codes the
// map does not know are skipped on canvas; the group still gets its
// legend entry.
func (w *World) AddCodes(label string, codes []string) {
	w.groups = append(w.groups, group{label: label, members: codes})
}

// RenderToFile draws every group onto an equirectangular world canvas and
// saves the plot to path. The file extension picks the format (.svg for
// the maps this tool emits). Everything is laid out in memory first, so a
// failed build leaves no file behind.
func (w *World) RenderToFile(path string) error {
	p := plot.New()
	p.Title.Text = w.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Min, p.X.Max = -180, 180
	p.Y.Min, p.Y.Max = -60, 85
	p.HideAxes()
	p.Add(plotter.NewGrid())

	for gi, g := range w.groups {
		pts, vals := g.points()
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrapf(err, "plot group %q", g.label)
		}
		base := groupPalette[gi%len(groupPalette)]
		scatter.GlyphStyle.Color = base
		scatter.GlyphStyle.Radius = vg.Points(5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		if g.values != nil {
			lo, hi := valueRange(vals)
			scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
				return draw.GlyphStyle{
					Color:  shade(base, normalize(vals[i], lo, hi)),
					Radius: vg.Points(5),
					Shape:  draw.CircleGlyph{},
				}
			}
		}
		p.Add(scatter)
		p.Legend.Add(g.label, scatter)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return errors.Wrapf(p.Save(14*vg.Inch, 8*vg.Inch, path), "save %s", path)
}

// points resolves a group's country codes to canvas coordinates, with the
// group's values (if any) in matching order.
func (g group) points() (plotter.XYs, []float64) {
	codes := g.members
	if g.values != nil {
		codes = make([]string, 0, len(g.values))
		for c := range g.values {
			codes = append(codes, c)
		}
		// deterministic glyph order across runs
		sort.Strings(codes)
	}

	var pts plotter.XYs
	var vals []float64
	for _, code := range codes {
		c, ok := countries[strings.ToLower(code)]
		if !ok {
			continue
		}
		pts = append(pts, plotter.XY{X: c.Lon, Y: c.Lat})
		if g.values != nil {
			vals = append(vals, g.values[code])
		}
	}
	return pts, vals
}

var groupPalette = []color.RGBA{
	{R: 0x3e, G: 0x71, B: 0xa8, A: 0xff}, // blue
	{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}, // red
	{R: 0xe6, G: 0xa8, B: 0x17, A: 0xff}, // amber
	{R: 0x56, G: 0x8f, B: 0x3f, A: 0xff}, // green
}

func valueRange(vals []float64) (lo, hi float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	return (v - lo) / (hi - lo)
}

// shade blends the group color toward white: t=1 is the full color for
// the largest value, t=0 is nearly washed out for the smallest.
func shade(base color.RGBA, t float64) color.RGBA {
	t = 0.25 + 0.75*t
	mix := func(c uint8) uint8 {
		return uint8(float64(c)*t + 255*(1-t))
	}
	return color.RGBA{R: mix(base.R), G: mix(base.G), B: mix(base.B), A: 0xff}
}
