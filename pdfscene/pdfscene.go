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

// Package pdfscene writes cubism scenes as single page PDF files.
//
// Every fragment becomes one filled and stroked path.  Fragment opacity is
// set through an extended graphics state, so that overlapping fragments
// blend in the PDF viewer the same way they do in the raster output.
package pdfscene

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/extgstate"

	"seehuhn.de/go/cubism"
	"seehuhn.de/go/cubism/internal/affine"
)

// Write draws sc onto a page of the given size, in PDF points, and writes
// the PDF file to w.  Stroke widths are in points.
func Write(w io.Writer, sc *cubism.Scene, width, height float64) error {
	if !(width > 0 && height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("pdfscene: invalid page size %gx%g", width, height)
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(deviceRGB(sc.Background))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF user space has the y-axis pointing up, like the scene.  The
	// points are mapped here rather than through the CTM, so that line
	// widths stay in points for non-uniform viewports.
	m := sc.Viewport(width, height, false)
	page.SetLineJoin(graphics.LineJoinMiter)

	states := make(map[[2]uint8]*extgstate.ExtGState)
	for i := range sc.Fragments {
		f := &sc.Fragments[i]
		if len(f.Vertices) == 0 {
			continue
		}
		stroke := f.StrokeWidth > 0

		key := [2]uint8{f.Fill.A, f.Stroke.A}
		gs, ok := states[key]
		if !ok {
			gs = &extgstate.ExtGState{
				Set:         graphics.StateFillAlpha | graphics.StateStrokeAlpha,
				FillAlpha:   float64(f.Fill.A) / 255,
				StrokeAlpha: float64(f.Stroke.A) / 255,
			}
			states[key] = gs
		}

		page.PushGraphicsState()
		page.SetExtGState(gs)
		page.SetFillColor(deviceRGB(f.Fill))
		if stroke {
			page.SetStrokeColor(deviceRGB(f.Stroke))
			page.SetLineWidth(f.StrokeWidth)
		}
		for j, v := range f.Vertices {
			p := affine.Apply(m, v)
			if j == 0 {
				page.MoveTo(p.X, p.Y)
			} else {
				page.LineTo(p.X, p.Y)
			}
		}
		page.ClosePath()
		if stroke {
			page.FillAndStroke()
		} else {
			page.Fill()
		}
		page.PopGraphicsState()
	}

	err = page.Close()
	if err != nil {
		return err
	}

	cubism.Logger().Debug("pdf scene written",
		"fragments", len(sc.Fragments),
		"width", width,
		"height", height,
		"alphaStates", len(states))
	return nil
}

// deviceRGB drops the alpha channel of c.
func deviceRGB(c color.NRGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
