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

// DerivativeSample is the estimated slope of the function at X.
type DerivativeSample struct {
	X, YPrime float64
}

// EstimateDerivative estimates the derivative at every sample, using
// central differences
//
//	(y[i+1] - y[i-1]) / (2 dx)
//
// at interior points and one-sided differences at the two ends.  The
// samples must be evenly spaced with distance dx.
//
// At a jump the estimate is a large spike of height jump/(2 dx).  This is
// the secant slope across the discontinuity and is returned as it is.
//
// A single sample has derivative zero.
func EstimateDerivative(samples []Sample, dx float64) []DerivativeSample {
	n := len(samples)
	res := make([]DerivativeSample, n)
	for i, s := range samples {
		res[i].X = s.X
	}
	if n < 2 {
		return res
	}

	res[0].YPrime = (samples[1].Y - samples[0].Y) / dx
	for i := 1; i < n-1; i++ {
		res[i].YPrime = (samples[i+1].Y - samples[i-1].Y) / (2 * dx)
	}
	res[n-1].YPrime = (samples[n-1].Y - samples[n-2].Y) / dx

	return res
}
