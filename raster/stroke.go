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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a stroked line segment with its unit tangent t and the unit
// normal n, which is t rotated by 90 degrees counter-clockwise.
type segment struct {
	a, b vec.Vec2
	t, n vec.Vec2
}

func appendSegment(segs []segment, a, b vec.Vec2) []segment {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return segs
	}
	t := d.Mul(1 / l)
	return append(segs, segment{a: a, b: b, t: t, n: vec.Vec2{X: -t.Y, Y: t.X}})
}

// stroker holds the buffers used to build stroke outlines.
type stroker struct {
	segs   []segment
	rev    []segment
	pts    []vec.Vec2 // vertices of all outline polygons
	starts []int      // index of the first vertex of each polygon
}

func (st *stroker) begin() {
	st.starts = append(st.starts, len(st.pts))
}

// Stroke computes the coverage of the outline of p, using the Width, Cap,
// Join and MiterLimit fields of r.
//
// Each subpath is replaced by polygons which enclose the stroked area:
// the offset lines on both sides, joined at the corners and capped at the
// ends.  All polygons are filled together with the nonzero rule, so that
// overlapping parts are painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	d := r.Width / 2
	if !(d > 0) {
		return
	}

	st := &r.st
	st.pts = st.pts[:0]
	st.starts = st.starts[:0]

	r.eachSubpath(p, func(pts []vec.Vec2, closed bool) {
		st.segs = st.segs[:0]
		for i := 1; i < len(pts); i++ {
			st.segs = appendSegment(st.segs, pts[i-1], pts[i])
		}
		if closed {
			st.segs = appendSegment(st.segs, pts[len(pts)-1], pts[0])
		}

		if len(st.segs) == 0 {
			// A subpath without direction is drawn as a dot, but only
			// for round caps.
			if r.Cap == graphics.LineCapRound {
				st.begin()
				r.arc(pts[0], d, vec.Vec2{X: 1}, -2*math.Pi, true)
			}
			return
		}
		r.outline(closed, d)
	})

	r.edges = r.edges[:0]
	r.box.reset()
	for i, start := range st.starts {
		end := len(st.pts)
		if i+1 < len(st.starts) {
			end = st.starts[i+1]
		}
		r.addPolygon(st.pts[start:end])
	}
	r.scan(NonZero, emit)
}

// outline builds the stroke polygons for the segments in r.st.segs.
//
// The right-hand side of a subpath is the left-hand side of the reversed
// subpath, so both sides are built by the same code.  Closed subpaths
// give two loops of opposite orientation, which bound a ring.  Open
// subpaths give one polygon, with a cap at either end.
func (r *Rasterizer) outline(closed bool, d float64) {
	st := &r.st
	st.rev = st.rev[:0]
	for i := len(st.segs) - 1; i >= 0; i-- {
		s := st.segs[i]
		st.rev = append(st.rev, segment{a: s.b, b: s.a, t: s.t.Mul(-1), n: s.n.Mul(-1)})
	}

	if closed {
		st.begin()
		r.side(st.segs, true, d)
		st.begin()
		r.side(st.rev, true, d)
		return
	}

	first, last := st.segs[0], st.segs[len(st.segs)-1]
	st.begin()
	r.addCap(first.a, first.t.Mul(-1), d)
	r.side(st.segs, false, d)
	r.addCap(last.b, last.t, d)
	r.side(st.rev, false, d)
}

// side appends the offset line at distance d on the left of segs.
func (r *Rasterizer) side(segs []segment, closed bool, d float64) {
	st := &r.st
	n := len(segs)
	corners := n - 1
	if closed {
		corners = n
	} else {
		st.pts = append(st.pts, segs[0].a.Add(segs[0].n.Mul(d)))
	}
	for i := range corners {
		r.corner(&segs[i], &segs[(i+1)%n], d)
	}
	if !closed {
		st.pts = append(st.pts, segs[n-1].b.Add(segs[n-1].n.Mul(d)))
	}
}

// corner appends the left offset vertices where segment in is followed by
// segment out.
func (r *Rasterizer) corner(in, out *segment, d float64) {
	st := &r.st
	p := in.b
	sin := in.t.X*out.t.Y - in.t.Y*out.t.X
	cos := in.t.Dot(out.t)

	switch {
	case math.Abs(sin) < collinearityThreshold && cos > 0:
		st.pts = append(st.pts, p.Add(in.n.Mul(d)), p.Add(out.n.Mul(d)))

	case sin > 0:
		// Left turn: this is the inner side and the two offset lines
		// intersect.
		if q, ok := offsetIntersection(p, in.n, out.n, cos, d); ok {
			st.pts = append(st.pts, q)
		} else {
			st.pts = append(st.pts, p.Add(in.n.Mul(d)), p.Add(out.n.Mul(d)))
		}

	default:
		st.pts = append(st.pts, p.Add(in.n.Mul(d)))
		r.join(p, in, out, cos, d)
		st.pts = append(st.pts, p.Add(out.n.Mul(d)))
	}
}

// offsetIntersection returns the point where the lines at distance d
// along the normals n1 and n2 through p meet.  cos is the cosine of the
// angle between the two segments.
func offsetIntersection(p, n1, n2 vec.Vec2, cos, d float64) (vec.Vec2, bool) {
	if cos > 1-1e-9 || 1+cos < 1e-12 {
		return vec.Vec2{}, false
	}
	// |n1 + n2| = 2 cos(θ/2) and the distance is d / cos(θ/2)
	return p.Add(n1.Add(n2).Mul(d / (1 + cos))), true
}

// join appends the join geometry on the outer side of a right turn at p.
// The caller adds the two offset points.
func (r *Rasterizer) join(p vec.Vec2, in, out *segment, cos, d float64) {
	if cos < cuspCosineThreshold {
		// the path doubles back
		r.addCap(p, in.t, d)
		return
	}

	switch r.Join {
	case graphics.LineJoinRound:
		r.arc(p, d, in.n, -math.Acos(max(-1, min(1, cos))), false)

	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2),
		// where φ is the angle between the two stroke edges.
		sinHalf := math.Sqrt((1 + cos) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			if q, ok := offsetIntersection(p, in.n, out.n, cos, d); ok {
				r.st.pts = append(r.st.pts, q)
			}
		}
		// otherwise beveled

	case graphics.LineJoinBevel:
		// the two offset points are enough
	}
}

// addCap appends the line cap at the end point p of a subpath.  u is the
// unit tangent pointing away from the line.  The cap runs from the left
// to the right of u.
func (r *Rasterizer) addCap(p, u vec.Vec2, d float64) {
	n := vec.Vec2{X: -u.Y, Y: u.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		e := p.Add(u.Mul(d))
		r.st.pts = append(r.st.pts, e.Add(n.Mul(d)), e.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		r.arc(p, d, n, -math.Pi, true)
	}
}

// arc appends points on the circle with the given center and radius,
// starting in direction dir and turning by sweep radians (positive is
// counter-clockwise).
func (r *Rasterizer) arc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, includeStart bool) {
	abs := math.Abs(sweep)
	n := int(math.Ceil(abs / (math.Pi / 2)))
	if radius > r.Flatness {
		// the sagitta of a chord with angle θ is radius (1 - cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/radius)
		if step > 0 {
			n = max(n, int(math.Ceil(abs/step)))
		}
	}
	n = max(n, 1)

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.st.pts = append(r.st.pts, center.Add(v.Mul(radius)))
	}
}
