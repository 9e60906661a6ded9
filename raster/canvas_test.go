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
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cubism"
	"seehuhn.de/go/cubism/testcases"
)

var (
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

func closeTo(a, b uint8) bool {
	return a-b <= 1 || b-a <= 1
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Clear(cubism.DefaultBackground)
	want := color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	for y := range 3 {
		for x := range 4 {
			if got := c.Image.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasAntialias(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Clear(black)
	c.Fill(square(0, 0, 2.5, 1), NonZero, red)

	var got []uint8
	for x := range 4 {
		got = append(got, c.Image.RGBAAt(x, 0).R)
	}
	want := []uint8{255, 255, 128, 0}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("red channel (-want +got):\n%s", d)
	}
}

func TestCanvasAlpha(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Clear(black)
	c.Fill(square(0, 0, 2, 2), NonZero, red)
	c.Fill(square(0, 0, 2, 2), NonZero, color.NRGBA{B: 255, A: 128})

	got := c.Image.RGBAAt(1, 1)
	if !closeTo(got.R, 127) || !closeTo(got.B, 128) || got.G != 0 || got.A != 255 {
		t.Errorf("blended pixel %v, want about {127 0 128 255}", got)
	}
}

func TestCanvasOrder(t *testing.T) {
	for _, order := range [][2]color.NRGBA{{red, green}, {green, red}} {
		c := NewCanvas(10, 10)
		c.Clear(black)
		c.Fill(square(0, 0, 6, 6), NonZero, order[0])
		c.Fill(square(4, 4, 10, 10), NonZero, order[1])

		top := order[1]
		want := color.RGBA{R: top.R, G: top.G, B: top.B, A: 255}
		if got := c.Image.RGBAAt(5, 5); got != want {
			t.Errorf("overlap %v, want %v", got, want)
		}
	}
}

// TestCanvasMaskCleared checks that coverage does not leak from one paint
// operation into the next.
func TestCanvasMaskCleared(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(black)
	c.Fill(square(0, 0, 3, 3), NonZero, red)
	c.Fill(square(6, 6, 9, 9), NonZero, green)

	if got := c.Image.RGBAAt(1, 1); got.G != 0 {
		t.Errorf("pixel (1,1) = %v, painted twice", got)
	}
	for i, v := range c.mask.Pix {
		if v != 0 {
			t.Fatalf("mask byte %d is %d after painting", i, v)
		}
	}
}

func TestCanvasStroke(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(black)
	c.Stroke(square(5, 5, 15, 15), 2, red)

	if got := c.Image.RGBAAt(10, 10); got.R != 0 {
		t.Errorf("inside of the outline is painted: %v", got)
	}
	if got := c.Image.RGBAAt(5, 10); got.R != 255 {
		t.Errorf("outline pixel is %v", got)
	}
}

func TestPolygon(t *testing.T) {
	c := NewCanvas(10, 10)
	c.CTM = matrix.Matrix{2, 0, 0, -2, 1, 9}
	p := c.Polygon([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})

	want := []vec.Vec2{{X: 1, Y: 9}, {X: 3, Y: 9}, {X: 3, Y: 7}}
	if d := cmp.Diff(want, p.Coords); d != "" {
		t.Errorf("coordinates (-want +got):\n%s", d)
	}
	if len(p.Cmds) != 4 {
		t.Errorf("got %d commands, want 4", len(p.Cmds))
	}

	if p := c.Polygon(nil); len(p.Cmds) != 0 {
		t.Errorf("empty polygon has commands %v", p.Cmds)
	}
}

func TestDraw(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				sc, err := cubism.Render(tc.Config)
				if err != nil {
					t.Fatal(err)
				}
				img := Draw(sc, tc.Width, tc.Height)

				if b := img.Bounds(); b.Dx() != tc.Width || b.Dy() != tc.Height {
					t.Fatalf("image size %v, want %dx%d", b, tc.Width, tc.Height)
				}
				bg := tc.Config.Background
				wantBg := color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}
				if got := img.RGBAAt(0, 0); got != wantBg {
					t.Errorf("corner pixel %v, want background %v", got, wantBg)
				}

				painted := 0
				for i := 0; i < len(img.Pix); i += 4 {
					if img.Pix[i+3] != 255 {
						t.Fatalf("pixel %d is not opaque", i/4)
					}
					if img.Pix[i] != bg.R || img.Pix[i+1] != bg.G || img.Pix[i+2] != bg.B {
						painted++
					}
				}
				if painted == 0 {
					t.Error("no fragment was drawn")
				}
			})
		}
	}
}
