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

// Package ggscene draws cubism scenes using the gogpu/gg 2D graphics
// library.  The output should look like the one of the raster package,
// up to anti-aliasing differences.
package ggscene

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"seehuhn.de/go/cubism"
	"seehuhn.de/go/cubism/internal/affine"
)

// Render draws sc into a new image of the given size.  Stroke widths are
// in pixels.
func Render(sc *cubism.Scene, width, height int) (img image.Image, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggscene: invalid image size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer func() {
		err = errors.Join(err, dc.Close())
	}()

	dc.ClearWithColor(rgba(sc.Background))
	dc.SetFillRule(gg.FillRuleNonZero)
	dc.SetLineJoin(gg.LineJoinMiter)

	m := sc.Viewport(float64(width), float64(height), true)
	for i := range sc.Fragments {
		f := &sc.Fragments[i]
		if len(f.Vertices) == 0 {
			continue
		}

		for j, v := range f.Vertices {
			p := affine.Apply(m, v)
			if j == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.ClosePath()

		fill := rgba(f.Fill)
		dc.SetRGBA(fill.R, fill.G, fill.B, fill.A)
		if f.StrokeWidth <= 0 {
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("ggscene: fragment %d: %w", i, err)
			}
			continue
		}
		if err := dc.FillPreserve(); err != nil {
			return nil, fmt.Errorf("ggscene: fragment %d: %w", i, err)
		}
		stroke := rgba(f.Stroke)
		dc.SetRGBA(stroke.R, stroke.G, stroke.B, stroke.A)
		dc.SetLineWidth(f.StrokeWidth)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("ggscene: fragment %d: %w", i, err)
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	img = dc.Image()

	cubism.Logger().Debug("gg scene drawn",
		"fragments", len(sc.Fragments),
		"width", width,
		"height", height)
	return img, nil
}

func rgba(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
