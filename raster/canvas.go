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
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cubism"
	"seehuhn.de/go/cubism/internal/affine"
)

// Canvas paints filled and stroked polygons onto an RGBA image.  Every
// paint operation is composited onto the existing pixels using the
// Porter-Duff "source over" operator.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Image holds the painted pixels.
	Image *image.RGBA

	// CTM maps user coordinates to pixel coordinates.
	CTM matrix.Matrix

	r     *Rasterizer
	mask  *image.Alpha
	dirty image.Rectangle
	path  path.Data
}

// NewCanvas allocates a transparent canvas of the given size, with the
// identity transformation.
func NewCanvas(width, height int) *Canvas {
	bounds := image.Rect(0, 0, width, height)
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		Image: image.NewRGBA(bounds),
		CTM:   matrix.Identity,
		r:     NewRasterizer(clip),
		mask:  image.NewAlpha(bounds),
	}
}

// Clear sets all pixels to col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Polygon returns the closed path through pts, mapped to pixel
// coordinates by c.CTM.  The path is overwritten by the next call.
func (c *Canvas) Polygon(pts []vec.Vec2) *path.Data {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
	if len(pts) == 0 {
		return &c.path
	}
	for i, p := range pts {
		cmd := path.CmdLineTo
		if i == 0 {
			cmd = path.CmdMoveTo
		}
		c.path.Cmds = append(c.path.Cmds, cmd)
		c.path.Coords = append(c.path.Coords, affine.Apply(c.CTM, p))
	}
	c.path.Cmds = append(c.path.Cmds, path.CmdClose)
	return &c.path
}

// Fill paints the interior of p, which is given in pixel coordinates.
func (c *Canvas) Fill(p *path.Data, rule FillRule, col color.Color) {
	c.r.Fill(p, rule, c.collect)
	c.paint(col)
}

// Stroke paints the outline of p, which is given in pixel coordinates.
// The line width is in pixels.
func (c *Canvas) Stroke(p *path.Data, width float64, col color.Color) {
	c.r.Width = width
	c.r.Stroke(p, c.collect)
	c.paint(col)
}

// collect stores one row of coverage values in the mask.
func (c *Canvas) collect(y, xMin int, coverage []float32) {
	row := c.mask.Pix[c.mask.PixOffset(xMin, y):]
	for i, v := range coverage {
		row[i] = uint8(v*255 + 0.5)
	}
	c.dirty = c.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// paint composites col through the mask and clears the mask again.
func (c *Canvas) paint(col color.Color) {
	if c.dirty.Empty() {
		return
	}
	draw.DrawMask(c.Image, c.dirty, image.NewUniform(col), image.Point{}, c.mask, c.dirty.Min, draw.Over)
	for y := c.dirty.Min.Y; y < c.dirty.Max.Y; y++ {
		clear(c.mask.Pix[c.mask.PixOffset(c.dirty.Min.X, y):c.mask.PixOffset(c.dirty.Max.X, y)])
	}
	c.dirty = image.Rectangle{}
}

// DrawScene clears the canvas to the scene background and paints all
// fragments in order.  Each fragment is filled using the nonzero rule and
// then outlined.  The scene is scaled to fill the whole canvas.
func (c *Canvas) DrawScene(sc *cubism.Scene) {
	b := c.Image.Bounds()
	c.CTM = sc.Viewport(float64(b.Dx()), float64(b.Dy()), true)
	c.Clear(sc.Background)

	for i := range sc.Fragments {
		f := &sc.Fragments[i]
		p := c.Polygon(f.Vertices)
		c.Fill(p, NonZero, f.Fill)
		if f.StrokeWidth > 0 {
			c.Stroke(p, f.StrokeWidth, f.Stroke)
		}
	}

	cubism.Logger().Debug("raster scene drawn",
		"fragments", len(sc.Fragments),
		"width", b.Dx(),
		"height", b.Dy())
}

// Draw renders sc into a new image of the given size.
func Draw(sc *cubism.Scene, width, height int) *image.RGBA {
	c := NewCanvas(width, height)
	c.DrawScene(sc)
	return c.Image
}
