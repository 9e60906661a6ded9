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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by line
// segments, which deviate at most tol from the curve, and calls line for
// each of them.
func flattenQuadratic(p0, p1, p2 vec.Vec2, tol float64, line func(from, to vec.Vec2)) {
	// the maximal deviation of the chord is |p0 - 2 p1 + p2| / 4
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > tol {
		n = int(math.Ceil(math.Sqrt(dev / tol)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces the cubic Bézier curve p0, ..., p3 by line
// segments, using Wang's formula for the number of segments.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, tol float64, line func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(int(math.Ceil(math.Sqrt(3*m/(4*tol)))), 1)
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}
