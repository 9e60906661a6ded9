// seehuhn.de/go/cubism - turn derivatives into polygon fragments
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package palette implements named colour scales, which map an intensity
// in [0, 1] to a colour.
//
// Each palette is given by evenly spaced control colours; values between
// the control points are found by linear interpolation in sRGB space.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// ErrUnknown is returned by [Lookup] for names which are not in the table.
var ErrUnknown = errors.New("unknown palette")

// Palette is an immutable colour scale.
type Palette struct {
	name    string
	stops   []color.NRGBA
	r, g, b interp.PiecewiseLinear
}

// New creates a palette from two or more evenly spaced control colours.
// The first colour corresponds to intensity 0, the last to intensity 1.
// The alpha values of the control colours are ignored.
func New(name string, stops []color.NRGBA) (*Palette, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("palette %q: need at least 2 colours, got %d", name, len(stops))
	}

	xs := floats.Span(make([]float64, len(stops)), 0, 1)
	rs := make([]float64, len(stops))
	gs := make([]float64, len(stops))
	bs := make([]float64, len(stops))
	for i, c := range stops {
		rs[i] = float64(c.R)
		gs[i] = float64(c.G)
		bs[i] = float64(c.B)
	}

	p := &Palette{
		name:  name,
		stops: slices.Clone(stops),
	}
	for _, ch := range []struct {
		pl *interp.PiecewiseLinear
		ys []float64
	}{{&p.r, rs}, {&p.g, gs}, {&p.b, bs}} {
		if err := ch.pl.Fit(xs, ch.ys); err != nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
	}
	return p, nil
}

// Name returns the name of the palette.
func (p *Palette) Name() string {
	return p.name
}

// At returns the opaque colour for intensity t.  Values outside [0, 1]
// are clamped, NaN is treated as 0.
func (p *Palette) At(t float64) color.NRGBA {
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1)

	return color.NRGBA{
		R: channel(p.r.Predict(t)),
		G: channel(p.g.Predict(t)),
		B: channel(p.b.Predict(t)),
		A: 0xff,
	}
}

// Stops returns a copy of the control colours.
func (p *Palette) Stops() []color.NRGBA {
	return slices.Clone(p.stops)
}

func channel(v float64) uint8 {
	return uint8(min(max(math.Round(v), 0), 255))
}

// Lookup returns the palette with the given name.  The comparison
// ignores case.
func Lookup(name string) (*Palette, error) {
	p, ok := table[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return p, nil
}

// Names returns the names of all built-in palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var table = map[string]*Palette{
	"magma":    mustNew("magma", magma),
	"viridis":  mustNew("viridis", viridis),
	"inferno":  mustNew("inferno", inferno),
	"coolwarm": mustNew("coolwarm", coolwarm),
}

func mustNew(name string, hex []uint32) *Palette {
	stops := make([]color.NRGBA, len(hex))
	for i, h := range hex {
		stops[i] = color.NRGBA{R: uint8(h >> 16), G: uint8(h >> 8), B: uint8(h), A: 0xff}
	}
	p, err := New(name, stops)
	if err != nil {
		panic(err)
	}
	return p
}

// Control colours, sampled at 11 evenly spaced points of the matplotlib
// colour maps of the same name (coolwarm at 5 points).
var (
	magma = []uint32{
		0x000004, 0x140e36, 0x3b0f70, 0x641a80, 0x8c2981, 0xb73779,
		0xde4968, 0xf7705c, 0xfe9f6d, 0xfecf92, 0xfcfdbf,
	}
	viridis = []uint32{
		0x440154, 0x482576, 0x414487, 0x35608d, 0x2a788e, 0x21908c,
		0x22a884, 0x43bf71, 0x7ad151, 0xbbdf27, 0xfde725,
	}
	inferno = []uint32{
		0x000004, 0x160b39, 0x420a68, 0x6a176e, 0x932667, 0xbc3754,
		0xdd513a, 0xf37819, 0xfca50a, 0xf6d746, 0xfcffa4,
	}
	coolwarm = []uint32{
		0x3b4cc0, 0x8db0fe, 0xdddddd, 0xf49a7b, 0xb40426,
	}
)
