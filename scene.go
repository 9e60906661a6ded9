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

package cubism

import (
	"image/color"

	"gonum.org/v1/gonum/floats"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

// Len returns the length of the interval.
func (r Range) Len() float64 {
	return r.Max - r.Min
}

// DefaultXRange is the horizontal extent of every scene.  It is slightly
// wider than the sampling domain, so that fragments at the ends are not
// cut off.
var DefaultXRange = Range{Min: -6, Max: 6}

// Scene is the complete, ordered list of fragments together with the
// region of the plane to show.  Later fragments are painted over earlier
// ones.  A Scene must not be modified after it has been composed.
type Scene struct {
	Fragments  []Fragment
	XRange     Range
	YRange     Range
	Background color.NRGBA
}

// Compose assembles a scene.  The vertical range covers the function
// values of all samples, extended by margin on both sides.  The fragments
// are stored in the given order and are not modified.
func Compose(samples []Sample, frags []Fragment, margin float64, background color.NRGBA) *Scene {
	sc := &Scene{
		Fragments:  frags,
		XRange:     DefaultXRange,
		YRange:     Range{Min: -margin, Max: margin},
		Background: background,
	}
	if len(samples) > 0 {
		ys := make([]float64, len(samples))
		for i, s := range samples {
			ys[i] = s.Y
		}
		sc.YRange = Range{Min: floats.Min(ys) - margin, Max: floats.Max(ys) + margin}
	}
	if sc.YRange.Len() <= 0 {
		// a constant function with zero margin still needs some height
		sc.YRange.Min -= 1
		sc.YRange.Max += 1
	}
	return sc
}

// View returns the visible region of the scene.
func (sc *Scene) View() rect.Rect {
	return rect.Rect{
		LLx: sc.XRange.Min,
		LLy: sc.YRange.Min,
		URx: sc.XRange.Max,
		URy: sc.YRange.Max,
	}
}

// Viewport returns the transformation which maps the visible region of
// the scene onto an output surface of the given size.  If yDown is true,
// the y axis of the output points downwards, as for raster images, and
// the top of the scene is mapped to y = 0.  Otherwise the bottom of the
// scene is mapped to y = 0, as for PDF pages.
func (sc *Scene) Viewport(width, height float64, yDown bool) matrix.Matrix {
	sx := width / sc.XRange.Len()
	sy := height / sc.YRange.Len()
	if yDown {
		return matrix.Matrix{sx, 0, 0, -sy, -sc.XRange.Min * sx, sc.YRange.Max * sy}
	}
	return matrix.Matrix{sx, 0, 0, sy, -sc.XRange.Min * sx, -sc.YRange.Min * sy}
}
