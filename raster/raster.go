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

// Package raster draws cubism scenes into RGBA images.
//
// The [Rasterizer] computes anti-aliased pixel coverage for paths given in
// device coordinates, using exact signed-area accumulation.  A [Canvas]
// maps scene coordinates to pixels and composites the coverage of every
// fragment onto an image, in painter's order.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule determines which points are inside a path.
type FillRule int

// The supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// EmitFunc receives the coverage of one pixel row.  coverage[i] belongs
// to pixel xMin+i.  The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer converts paths in device coordinates into pixel coverage
// values between 0 (outside) and 1 (inside).  Internal buffers grow as
// needed and are reused, so a Rasterizer should be kept for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip limits the output to this rectangle.  The coordinates must be
	// integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in pixels, between a curve and
	// the polygon which replaces it.  Must be positive.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the shape of the ends of open subpaths when stroking.
	Cap graphics.LineCapStyle

	// Join is the shape of stroked corners.
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins to bevels for sharp corners.
	// Must be at least 1.
	MiterLimit float64

	// smallPathThreshold is the largest bounding box area (in pixels)
	// which is scanned using full 2D buffers.  Larger paths use an active
	// edge list.
	smallPathThreshold int

	cover   []float32 // signed cover change per pixel, reused as output
	area    []float32 // signed area within each pixel
	edges   []edge
	box     edgeBox
	active  []int  // indices into edges
	rowUsed []bool // rows touched by at least one edge
	poly    []vec.Vec2

	st stroker
}

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) yRange() (float64, float64) {
	return min(e.y0, e.y1), max(e.y0, e.y1)
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// edgeBox is the bounding box of all collected edges.
type edgeBox struct {
	empty                  bool
	xMin, xMax, yMin, yMax float64
}

func (b *edgeBox) reset() {
	b.empty = true
}

func (b *edgeBox) include(p vec.Vec2) {
	if b.empty {
		b.xMin, b.xMax, b.yMin, b.yMax = p.X, p.X, p.Y, p.Y
		b.empty = false
		return
	}
	b.xMin = min(b.xMin, p.X)
	b.xMax = max(b.xMax, p.X)
	b.yMin = min(b.yMin, p.Y)
	b.yMax = max(b.yMax, p.Y)
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.  The
// stroke parameters are set to a one pixel wide line with butt caps and
// miter joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// The internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.smallPathThreshold = smallPathThreshold
}

// Fill computes the coverage of the interior of p.  Open subpaths are
// closed implicitly.
func (r *Rasterizer) Fill(p *path.Data, rule FillRule, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.box.reset()
	r.eachSubpath(p, func(pts []vec.Vec2, _ bool) {
		r.addPolygon(pts)
	})
	r.scan(rule, emit)
}

// eachSubpath flattens the curves of p and calls fn with the vertices of
// every subpath.  The slice is only valid during the call.  closed
// reports whether the subpath ends with a ClosePath command.
//
// A subpath which consists of a MoveTo only is skipped.
func (r *Rasterizer) eachSubpath(p *path.Data, fn func(pts []vec.Vec2, closed bool)) {
	var start vec.Vec2
	drawn := false

	r.poly = r.poly[:0]
	flush := func(closed bool) {
		if drawn {
			fn(r.poly, closed)
		}
		r.poly = r.poly[:0]
		drawn = false
	}
	// current returns the current point, starting a new subpath at the
	// last MoveTo point if needed.
	current := func() vec.Vec2 {
		if len(r.poly) == 0 {
			r.poly = append(r.poly, start)
		}
		drawn = true
		return r.poly[len(r.poly)-1]
	}
	line := func(_, to vec.Vec2) {
		r.poly = append(r.poly, to)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			start = p.Coords[k]
			r.poly = append(r.poly, start)
			k++
		case path.CmdLineTo:
			line(current(), p.Coords[k])
			k++
		case path.CmdQuadTo:
			flattenQuadratic(current(), p.Coords[k], p.Coords[k+1], r.Flatness, line)
			k += 2
		case path.CmdCubeTo:
			flattenCubic(current(), p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.Flatness, line)
			k += 3
		case path.CmdClose:
			current()
			flush(true)
			// a new subpath continues from the start point
			r.poly = append(r.poly, start)
		}
	}
	flush(false)
}

// addPolygon adds the edges of the closed polygon with vertices pts.
func (r *Rasterizer) addPolygon(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	prev := pts[len(pts)-1]
	for _, p := range pts {
		r.addEdge(prev, p)
		prev = p
	}
}

func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})
	r.box.include(a)
	r.box.include(b)
}

// pixelBounds returns the pixel rectangle touched by the collected
// edges, clipped to r.Clip.
func (r *Rasterizer) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.box.xMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.box.xMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.box.yMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.box.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan converts the collected edges into coverage.
func (r *Rasterizer) scan(rule FillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.scanBuffered(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.scanActive(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// Coverage is accumulated per pixel in two buffers.  An edge piece
// crossing a pixel with signed height h (positive for downward edges)
// adds h to cover and h*(1-f) to area, where f is the mean horizontal
// position of the piece inside the pixel.  Summing cover from the left
// and adding area gives the signed area of the path inside each pixel.
// Edge pieces left of the buffer are accounted for in the first pixel.

// accumulate adds the part of e inside pixel row y to cover and area,
// which hold the pixels xMin, ..., xMax-1.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	eyMin, eyMax := e.yRange()
	top := max(float64(y), eyMin)
	bot := min(float64(y+1), eyMax)
	if bot <= top {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop, xBot := e.xAt(top), e.xAt(bot)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	switch {
	case left >= xMax:
		return
	case right < xMin:
		h := sign * float32(bot-top)
		cover[0] += h
		area[0] += h
		return
	case left == right:
		addPiece(e, top, bot, sign, left, cover, area, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns.  Split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for px := left; px <= right; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi <= lo {
			continue
		}
		addPiece(e, lo, hi, sign, px, cover, area, xMin, xMax)
	}
}

// addPiece adds the part of e between lo and hi, which lies inside pixel
// column px.
func addPiece(e *edge, lo, hi float64, sign float32, px int, cover, area []float32, xMin, xMax int) {
	h := sign * float32(hi-lo)
	switch {
	case px < xMin:
		cover[0] += h
		area[0] += h
	case px < xMax:
		f := e.xAt((lo+hi)/2) - float64(px)
		i := px - xMin
		cover[i] += h
		area[i] += h * float32(1-f)
	}
}

// integrate turns one row of cover and area values into coverage.  The
// result overwrites cover.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of that part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// scanBuffered accumulates all rows at once into 2D buffers.
func (r *Rasterizer) scanBuffered(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin

	r.cover = grow(r.cover, w*h)
	r.area = grow(r.area, w*h)
	r.rowUsed = grow(r.rowUsed, h)

	for i := range r.edges {
		e := &r.edges[i]
		eyMin, eyMax := e.yRange()
		first := max(int(math.Floor(eyMin)), yMin)
		last := min(int(math.Floor(eyMax))+1, yMax)
		for y := first; y < last; y++ {
			row := (y - yMin) * w
			accumulate(e, y, r.cover[row:row+w], r.area[row:row+w], xMin, xMax)
			r.rowUsed[y-yMin] = true
		}
	}

	for j := range h {
		if !r.rowUsed[j] {
			continue
		}
		row := j * w
		cov := r.cover[row : row+w]
		integrate(cov, r.area[row:row+w], rule)
		if part, off := trimZeros(cov); part != nil {
			emit(yMin+j, xMin+off, part)
		}
	}
}

// scanActive processes one row at a time, keeping a list of the edges
// which intersect the current row.
func (r *Rasterizer) scanActive(xMin, xMax, yMin, yMax int, rule FillRule, emit EmitFunc) {
	w := xMax - xMin
	r.cover = grow(r.cover, w)
	r.area = grow(r.area, w)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bot {
			r.active = append(r.active, next)
			next++
		}

		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if _, eyMax := e.yRange(); eyMax <= top {
				// finished; swap-remove
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if !touched {
				clear(r.cover)
				clear(r.area)
				touched = true
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if part, off := trimZeros(r.cover); part != nil {
			emit(y, xMin+off, part)
		}
	}
}

// grow returns a zeroed slice of length n, reusing the storage of buf.
func grow[T any](buf []T, n int) []T {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)
	return buf
}

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.  Joins with an interior
	// angle below about 11.5 degrees are beveled.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default for Rasterizer.smallPathThreshold.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the shortest stroke segment which is kept.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin| below which two stroke segments
	// are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back, about
	// 179.4 degrees.
	cuspCosineThreshold = -0.9999
)
