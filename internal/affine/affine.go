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

// Package affine applies PDF-style transformation matrices to points.
package affine

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Apply maps the point v through the affine transformation m, using the
// PDF convention x' = a x + c y + e, y' = b x + d y + f.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
