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
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cubism/internal/affine"
	"seehuhn.de/go/cubism/palette"
)

// BaseShape is the outline of a single fragment before it is scaled,
// rotated and moved into place.
type BaseShape int

// The base shapes.
const (
	Triangle BaseShape = iota
	Quad
)

func (s BaseShape) String() string {
	switch s {
	case Triangle:
		return "triangle"
	case Quad:
		return "quad"
	default:
		return fmt.Sprintf("BaseShape(%d)", int(s))
	}
}

// Outline returns the vertices of the shape in its local frame.  The
// first vertex is the origin, which is later placed on the sample point.
func (s BaseShape) Outline() []vec.Vec2 {
	switch s {
	case Triangle:
		return []vec.Vec2{{X: 0, Y: 0}, {X: 0.5, Y: 0.2}, {X: 0.2, Y: 0.8}}
	case Quad:
		return []vec.Vec2{{X: 0, Y: 0}, {X: 0.4, Y: 0.1}, {X: 0.5, Y: 0.5}, {X: 0.1, Y: 0.4}}
	default:
		return nil
	}
}

// Fragment describes one polygon of the scene.
type Fragment struct {
	Shape  BaseShape
	Anchor vec.Vec2 // the sample point (x, y)

	// Rotation is the angle of the fragment in degrees, in (-90, 90].
	Rotation float64

	// Scale is the factor applied to the base shape.
	Scale float64

	// Intensity is the normalised derivative magnitude which selected
	// the fill colour, in [0, 1].
	Intensity float64

	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64

	// Vertices is the outline in scene coordinates: the base shape after
	// scaling, rotation about the origin vertex and translation to Anchor.
	Vertices []vec.Vec2
}

// RotationDegrees returns the fragment angle for slope yPrime, i.e. the
// arctangent in degrees.  The result is in (-90, 90]; the vertical
// direction is always reported as +90.  NaN maps to 0.
func RotationDegrees(yPrime float64) float64 {
	if math.IsNaN(yPrime) {
		return 0
	}
	deg := math.Atan(yPrime) * 180 / math.Pi
	if deg <= -90 {
		deg = 90
	}
	return deg
}

// Intensity returns |yPrime| / (maxAbs + eps), clamped to [0, 1].
// For eps > 0 this is well defined even if all derivatives are zero.
func Intensity(yPrime, maxAbs, eps float64) float64 {
	t := math.Abs(yPrime) / (maxAbs + eps)
	if math.IsNaN(t) {
		return 0
	}
	return min(max(t, 0), 1)
}

// ScaleFactor returns boost if |yPrime| > threshold and 1 otherwise.
func ScaleFactor(yPrime, threshold, boost float64) float64 {
	if math.Abs(yPrime) > threshold {
		return boost
	}
	return 1
}

// Mapper converts samples and derivatives into fragments.
// A Mapper holds no state between calls and can be shared.
type Mapper struct {
	Shape   ShapeFamily
	Palette *palette.Palette

	Threshold float64
	Boost     float64
	Epsilon   float64

	FillAlpha   float64
	Stroke      color.NRGBA
	StrokeWidth float64

	Jitter float64
	Seed   uint64
}

// NewMapper returns a Mapper for the mapping parameters of cfg.
func NewMapper(cfg *Config) (*Mapper, error) {
	pal, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return nil, paletteError(cfg.Palette, err)
	}
	return &Mapper{
		Shape:       cfg.Shape,
		Palette:     pal,
		Threshold:   cfg.Threshold,
		Boost:       cfg.Boost,
		Epsilon:     cfg.Epsilon,
		FillAlpha:   cfg.FillAlpha,
		Stroke:      cfg.Stroke,
		StrokeWidth: cfg.StrokeWidth,
		Jitter:      cfg.Jitter,
		Seed:        cfg.Seed,
	}, nil
}

// MaxAbsPrime returns the largest slope magnitude in derivs, or 0 if
// derivs is empty.  This is the value intensities are normalised by.
func MaxAbsPrime(derivs []DerivativeSample) float64 {
	if len(derivs) == 0 {
		return 0
	}
	abs := make([]float64, len(derivs))
	for i, d := range derivs {
		abs[i] = math.Abs(d.YPrime)
	}
	return floats.Max(abs)
}

// jitterStream selects the PCG stream used for vertex jitter.
const jitterStream = 0x63756269736d // "cubism"

// Map returns one fragment per sample.  samples and derivs must have the
// same length.
func (m *Mapper) Map(samples []Sample, derivs []DerivativeSample) ([]Fragment, error) {
	if len(samples) != len(derivs) {
		return nil, fmt.Errorf("cubism: %d samples but %d derivatives", len(samples), len(derivs))
	}
	if len(samples) == 0 {
		return nil, nil
	}

	maxAbs := MaxAbsPrime(derivs)

	var rng *rand.Rand
	if m.Jitter > 0 {
		rng = rand.New(rand.NewPCG(m.Seed, jitterStream))
	}

	alpha := alpha8(m.FillAlpha)
	stroke := m.Stroke
	stroke.A = alpha

	frags := make([]Fragment, len(samples))
	for i, s := range samples {
		yp := derivs[i].YPrime
		f := Fragment{
			Shape:       m.shapeAt(i),
			Anchor:      vec.Vec2{X: s.X, Y: s.Y},
			Rotation:    RotationDegrees(yp),
			Scale:       ScaleFactor(yp, m.Threshold, m.Boost),
			Intensity:   Intensity(yp, maxAbs, m.Epsilon),
			Stroke:      stroke,
			StrokeWidth: m.StrokeWidth,
		}
		f.Fill = m.Palette.At(f.Intensity)
		f.Fill.A = alpha
		f.Vertices = place(f.Shape.Outline(), f.Scale, f.Rotation, f.Anchor, m.Jitter, rng)
		frags[i] = f
	}
	return frags, nil
}

func (m *Mapper) shapeAt(i int) BaseShape {
	switch m.Shape {
	case Quads:
		return Quad
	case Mixed:
		if i%2 == 1 {
			return Quad
		}
		return Triangle
	default:
		return Triangle
	}
}

// place scales the local outline, rotates it about the origin vertex and
// then translates the origin onto anchor.  The outline is modified in
// place and returned.
func place(outline []vec.Vec2, scale, deg float64, anchor vec.Vec2, jitter float64, rng *rand.Rand) []vec.Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	m := matrix.Matrix{cos, sin, -sin, cos, anchor.X, anchor.Y}

	for i, v := range outline {
		v = v.Mul(scale)
		if rng != nil && i > 0 {
			v = v.Mul(1 + jitter*(2*rng.Float64()-1))
		}
		outline[i] = affine.Apply(m, v)
	}
	return outline
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(min(max(a, 0), 1) * 255))
}
