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
	"math"

	"gonum.org/v1/gonum/floats"
)

// The sampling domain.
const (
	DomainMin = -5.0
	DomainMax = 5.0
)

// Sample is a function value at one evaluation point.
type Sample struct {
	X, Y float64
}

// Spacing returns the distance between neighbouring evaluation points
// when the domain is divided into n points.
func Spacing(n int) float64 {
	return (DomainMax - DomainMin) / float64(n-1)
}

// Eval evaluates the function at x.
func (v Variant) Eval(x float64) float64 {
	switch v {
	case SymmetricSine:
		return math.Sin(x)
	case AbsoluteValue:
		return math.Abs(x)
	case Step:
		return sign(x)
	case Polynomial:
		return 0.1*x*x*x - x
	case SpikyWave:
		return math.Sin(x) + 0.5*sign(math.Sin(2*x))
	default:
		return math.NaN()
	}
}

// sign returns -1, 0 or 1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// SampleFunction evaluates the function v at n evenly spaced points of
// [DomainMin, DomainMax].  The first and last point coincide with the
// domain boundaries.
func SampleFunction(v Variant, n int) ([]Sample, error) {
	if !v.Valid() {
		return nil, &ConfigError{Field: "Function", Value: int(v), Reason: "is not a known function"}
	}
	if err := checkCount(n); err != nil {
		return nil, err
	}

	xs := floats.Span(make([]float64, n), DomainMin, DomainMax)
	samples := make([]Sample, n)
	for i, x := range xs {
		samples[i] = Sample{X: x, Y: v.Eval(x)}
	}
	return samples, nil
}
