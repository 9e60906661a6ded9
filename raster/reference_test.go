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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/draw"

	"seehuhn.de/go/cubism"
	"seehuhn.de/go/cubism/testcases"
)

// refDir holds the PNG files written by testcases/genpdf, which renders
// the PDF output of every test case with Ghostscript.
var refDir = filepath.Join("..", "testdata", "reference")

// TestAgainstReference compares the raster output of every test case
// with the Ghostscript rendering of the corresponding PDF file.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				want, err := loadReference(filepath.Join(refDir, name+".png"))
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run testcases/genpdf to create one")
				} else if err != nil {
					t.Fatal(err)
				}

				sc, err := cubism.Render(tc.Config)
				if err != nil {
					t.Fatal(err)
				}
				got := Draw(sc, tc.Width, tc.Height)

				if err := compareImages(name, want, got); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func loadReference(fname string) (*image.RGBA, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return img, nil
}

// channelDiff summarises the per-channel differences between two images.
type channelDiff struct {
	mean  [3]float64
	max   [3]int
	count int // pixels where some channel differs by more than the tolerance
}

func diffImages(expected, actual *image.RGBA, tolerance int) channelDiff {
	var d channelDiff
	var sum [3]int
	w, h := expected.Rect.Dx(), expected.Rect.Dy()
	for y := range h {
		e := expected.Pix[y*expected.Stride:]
		a := actual.Pix[y*actual.Stride:]
		for x := range w {
			over := false
			for c := range 3 {
				diff := int(e[4*x+c]) - int(a[4*x+c])
				if diff < 0 {
					diff = -diff
				}
				sum[c] += diff
				d.max[c] = max(d.max[c], diff)
				if diff > tolerance {
					over = true
				}
			}
			if over {
				d.count++
			}
		}
	}
	if total := w * h; total > 0 {
		for c := range 3 {
			d.mean[c] = float64(sum[c]) / float64(total)
		}
	}
	return d
}

func compareImages(name string, expected, actual *image.RGBA) error {
	// Ghostscript anti-aliases with only 4 bits of alpha, so edge pixels
	// differ from the exact coverage.  Thin strokes may also land on
	// neighbouring pixels, which the max limit allows for.
	const tolerance = 32
	const maxMean = 3.0
	const maxDiff = 192
	const maxDiffPercent = 5

	if expected.Rect.Size() != actual.Rect.Size() {
		return fmt.Errorf("size %v, reference has %v", actual.Rect.Size(), expected.Rect.Size())
	}

	d := diffImages(expected, actual, tolerance)
	total := expected.Rect.Dx() * expected.Rect.Dy()
	maxAllowed := total * maxDiffPercent / 100

	var errs []error
	for c, label := range []string{"red", "green", "blue"} {
		if d.mean[c] > maxMean {
			errs = append(errs, fmt.Errorf("%s: mean difference %.2f > %g", label, d.mean[c], maxMean))
		}
		if d.max[c] > maxDiff {
			errs = append(errs, fmt.Errorf("%s: maximum difference %d > %d", label, d.max[c], maxDiff))
		}
	}
	if d.count > maxAllowed {
		errs = append(errs, fmt.Errorf("%d pixels differ by >%d (max allowed: %d)",
			d.count, tolerance, maxAllowed))
	}
	if len(errs) > 0 {
		writeDiffImage(name, expected, actual)
	}
	return errors.Join(errs...)
}

// writeDiffImage stores the luminance of the reference in the red channel
// and the luminance of the raster output in the green channel.
func writeDiffImage(name string, expected, actual *image.RGBA) {
	os.MkdirAll("debug", 0755)

	b := expected.Rect
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			e := color.GrayModel.Convert(expected.RGBAAt(x, y)).(color.Gray)
			a := color.GrayModel.Convert(actual.RGBAAt(x, y)).(color.Gray)
			img.SetRGBA(x, y, color.RGBA{R: e.Y, G: a.Y, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

func TestCompareImages(t *testing.T) {
	bg := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	newImage := func() *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, 20, 20))
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
		return img
	}

	ref := newImage()
	same := newImage()
	if err := compareImages("same", ref, same); err != nil {
		t.Errorf("identical images: %v", err)
	}

	// A one pixel wide column that differs in the red channel only.
	edge := newImage()
	for y := range 20 {
		edge.SetRGBA(0, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
	}
	d := diffImages(ref, edge, 32)
	if d.max[0] != 170 || d.max[1] != 0 || d.count != 20 {
		t.Errorf("edge: got %+v", d)
	}

	wrong := newImage()
	draw.Draw(wrong, image.Rect(0, 0, 20, 10), image.NewUniform(color.RGBA{B: 255, A: 255}), image.Point{}, draw.Src)
	d = diffImages(ref, wrong, 32)
	if d.mean[2] <= 3 || d.max[2] != 225 {
		t.Errorf("half painted: got %+v", d)
	}

	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := compareImages("size", ref, small); err == nil {
		t.Error("size mismatch not detected")
	}
}
