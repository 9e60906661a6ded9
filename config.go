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
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"seehuhn.de/go/cubism/palette"
)

// Variant identifies the function which is sampled.
type Variant int

// The supported function variants.
const (
	SymmetricSine Variant = iota // sin x
	AbsoluteValue                // |x|
	Step                         // sign(x)
	Polynomial                   // 0.1 x³ - x
	SpikyWave                    // sin x + 0.5 sign(sin 2x)

	numVariants
)

var variantNames = [numVariants]string{
	SymmetricSine: "sine",
	AbsoluteValue: "abs",
	Step:          "step",
	Polynomial:    "polynomial",
	SpikyWave:     "spiky",
}

func (v Variant) String() string {
	if v < 0 || v >= numVariants {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	return v >= 0 && v < numVariants
}

// Variants returns all supported variants in a fixed order.
func Variants() []Variant {
	res := make([]Variant, numVariants)
	for i := range res {
		res[i] = Variant(i)
	}
	return res
}

// ParseVariant converts a variant name, as returned by [Variant.String],
// back into a Variant.  The comparison ignores case.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if strings.EqualFold(s, name) {
			return Variant(v), nil
		}
	}
	return 0, &ConfigError{Field: "Function", Value: s, Reason: "is not a known function"}
}

// MarshalText implements [encoding.TextMarshaler].
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, &ConfigError{Field: "Function", Value: int(v), Reason: "is not a known function"}
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ShapeFamily selects the base shapes used for the fragments.
type ShapeFamily int

// The supported shape families.
const (
	Triangles ShapeFamily = iota
	Quads
	Mixed // alternating triangles and quads

	numShapeFamilies
)

var shapeFamilyNames = [numShapeFamilies]string{
	Triangles: "triangles",
	Quads:     "quads",
	Mixed:     "mixed",
}

func (s ShapeFamily) String() string {
	if s < 0 || s >= numShapeFamilies {
		return fmt.Sprintf("ShapeFamily(%d)", int(s))
	}
	return shapeFamilyNames[s]
}

// Valid reports whether s is one of the supported shape families.
func (s ShapeFamily) Valid() bool {
	return s >= 0 && s < numShapeFamilies
}

// ParseShapeFamily converts a shape family name back into a ShapeFamily.
// The comparison ignores case.
func ParseShapeFamily(s string) (ShapeFamily, error) {
	for f, name := range shapeFamilyNames {
		if strings.EqualFold(s, name) {
			return ShapeFamily(f), nil
		}
	}
	return 0, &ConfigError{Field: "Shape", Value: s, Reason: "is not a known shape family"}
}

// MarshalText implements [encoding.TextMarshaler].
func (s ShapeFamily) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &ConfigError{Field: "Shape", Value: int(s), Reason: "is not a known shape family"}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *ShapeFamily) UnmarshalText(text []byte) error {
	parsed, err := ParseShapeFamily(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Limits for the number of fragments in a scene.
const (
	MinCount     = 2
	MaxCount     = 300
	DefaultCount = 150
)

// Default values for the mapping and composition parameters.
const (
	// DefaultThreshold is the derivative magnitude above which fragments
	// are enlarged.  The comparison is strict: |y'| = 2 is not boosted.
	DefaultThreshold = 2.0

	// DefaultBoost is the scale factor of fragments above the threshold.
	DefaultBoost = 1.5

	// DefaultEpsilon is added to the largest derivative magnitude before
	// normalising colour intensities.
	DefaultEpsilon = 0.5

	// DefaultFillAlpha is the opacity of the fragment fill and stroke.
	DefaultFillAlpha = 0.7

	// DefaultStrokeWidth is the outline width in output units (pixels
	// for raster images, points for PDF).
	DefaultStrokeWidth = 0.4

	// DefaultMargin is added above and below the range of function values.
	DefaultMargin = 2.0

	// DefaultPalette is the name of the palette used by [DefaultConfig].
	DefaultPalette = "magma"
)

// DefaultBackground is the scene background colour.
var DefaultBackground = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

// Config holds all parameters of a render request.
// The zero value is not valid; start from [DefaultConfig].
type Config struct {
	// Function is the function to sample.
	Function Variant

	// Count is the number of samples and fragments, between MinCount
	// and MaxCount.
	Count int

	// Shape selects the fragment base shapes.
	Shape ShapeFamily

	// Palette is the name of the colour scale, see [palette.Names].
	Palette string

	// Threshold is the derivative magnitude above which the fragment
	// scale is multiplied by Boost.  Must be non-negative.
	Threshold float64

	// Boost is the scale factor for steep fragments.  Must be positive.
	Boost float64

	// Epsilon guards the intensity normalisation.  Must be positive.
	Epsilon float64

	// FillAlpha is the fragment opacity, in (0, 1].
	FillAlpha float64

	// Stroke is the outline colour.  Its alpha is replaced by FillAlpha.
	Stroke color.NRGBA

	// StrokeWidth is the outline width in output units.  Zero disables
	// outlines.
	StrokeWidth float64

	// Margin is added above and below the range of function values.
	Margin float64

	// Background is the scene background colour.
	Background color.NRGBA

	// Jitter, if positive, randomly stretches the fragment vertices by a
	// factor in [1-Jitter, 1+Jitter].  Must be in [0, 1).
	Jitter float64

	// Seed initialises the random source used for Jitter.
	Seed uint64
}

// DefaultConfig returns the configuration of the default scene.
func DefaultConfig() Config {
	return Config{
		Function:    SymmetricSine,
		Count:       DefaultCount,
		Shape:       Triangles,
		Palette:     DefaultPalette,
		Threshold:   DefaultThreshold,
		Boost:       DefaultBoost,
		Epsilon:     DefaultEpsilon,
		FillAlpha:   DefaultFillAlpha,
		Stroke:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		StrokeWidth: DefaultStrokeWidth,
		Margin:      DefaultMargin,
		Background:  DefaultBackground,
	}
}

// Validate checks all fields of the configuration.  The returned error,
// if any, is a [*ConfigError] for the first offending field.
func (cfg *Config) Validate() error {
	if !cfg.Function.Valid() {
		return &ConfigError{Field: "Function", Value: int(cfg.Function), Reason: "is not a known function"}
	}
	if err := checkCount(cfg.Count); err != nil {
		return err
	}
	if !cfg.Shape.Valid() {
		return &ConfigError{Field: "Shape", Value: int(cfg.Shape), Reason: "is not a known shape family"}
	}
	if _, err := palette.Lookup(cfg.Palette); err != nil {
		return paletteError(cfg.Palette, err)
	}

	type check struct {
		field  string
		value  float64
		ok     bool
		reason string
	}
	checks := []check{
		{"Threshold", cfg.Threshold, cfg.Threshold >= 0, "must be non-negative"},
		{"Boost", cfg.Boost, cfg.Boost > 0, "must be positive"},
		{"Epsilon", cfg.Epsilon, cfg.Epsilon > 0, "must be positive"},
		{"FillAlpha", cfg.FillAlpha, cfg.FillAlpha > 0 && cfg.FillAlpha <= 1, "must be in (0, 1]"},
		{"StrokeWidth", cfg.StrokeWidth, cfg.StrokeWidth >= 0, "must be non-negative"},
		{"Margin", cfg.Margin, cfg.Margin >= 0, "must be non-negative"},
		{"Jitter", cfg.Jitter, cfg.Jitter >= 0 && cfg.Jitter < 1, "must be in [0, 1)"},
	}
	for _, c := range checks {
		// NaN fails every comparison above, but +Inf passes some of them
		if !c.ok || math.IsInf(c.value, 0) {
			return &ConfigError{Field: c.field, Value: c.value, Reason: c.reason}
		}
	}
	return nil
}

func checkCount(n int) error {
	if n < MinCount {
		return &ConfigError{Field: "Count", Value: n, Reason: fmt.Sprintf("must be at least %d", MinCount)}
	}
	if n > MaxCount {
		return &ConfigError{Field: "Count", Value: n, Reason: fmt.Sprintf("must be at most %d", MaxCount)}
	}
	return nil
}

func paletteError(name string, err error) error {
	reason := "cannot be used"
	if errors.Is(err, palette.ErrUnknown) {
		reason = "is not a known palette"
	}
	return &ConfigError{Field: "Palette", Value: name, Reason: reason, Err: err}
}
