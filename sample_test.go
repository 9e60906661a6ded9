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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSampleFunctionEndpoints(t *testing.T) {
	for _, v := range Variants() {
		for _, n := range []int{2, 3, 150, 300} {
			samples, err := SampleFunction(v, n)
			if err != nil {
				t.Fatalf("%s, n=%d: %v", v, n, err)
			}
			if len(samples) != n {
				t.Fatalf("%s, n=%d: got %d samples", v, n, len(samples))
			}
			if samples[0].X != DomainMin || samples[n-1].X != DomainMax {
				t.Errorf("%s, n=%d: domain [%g, %g]", v, n, samples[0].X, samples[n-1].X)
			}
			for i := 1; i < n; i++ {
				if samples[i].X <= samples[i-1].X {
					t.Errorf("%s, n=%d: x not increasing at %d", v, n, i)
					break
				}
			}
		}
	}
}

func TestSampleAbs(t *testing.T) {
	samples, err := SampleFunction(AbsoluteValue, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []Sample{{-5, 5}, {-2.5, 2.5}, {0, 0}, {2.5, 2.5}, {5, 5}}
	if d := cmp.Diff(want, samples, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", d)
	}
}

func TestSampleStep(t *testing.T) {
	samples, err := SampleFunction(Step, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{-1, -1, 0, 1, 1}
	for i, s := range samples {
		if s.Y != want[i] {
			t.Errorf("step(%g) = %g, want %g", s.X, s.Y, want[i])
		}
	}
}

func TestEval(t *testing.T) {
	cases := []struct {
		v    Variant
		x    float64
		want float64
	}{
		{SymmetricSine, math.Pi / 2, 1},
		{AbsoluteValue, -3, 3},
		{Step, -0.001, -1},
		{Step, 0, 0},
		{Polynomial, 2, 0.8 - 2},
		{Polynomial, -5, -12.5 + 5},
		{SpikyWave, 1, math.Sin(1) + 0.5},
		{SpikyWave, 2, math.Sin(2) - 0.5},
	}
	for _, c := range cases {
		got := c.v.Eval(c.x)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s(%g) = %g, want %g", c.v, c.x, got, c.want)
		}
	}
	if !math.IsNaN(Variant(99).Eval(0)) {
		t.Error("unknown variant should evaluate to NaN")
	}
}

func TestSampleFunctionErrors(t *testing.T) {
	_, err := SampleFunction(SymmetricSine, 1)
	var cErr *ConfigError
	if !errors.As(err, &cErr) || cErr.Field != "Count" {
		t.Errorf("n=1: got %v", err)
	}

	_, err = SampleFunction(Variant(-1), 10)
	if !errors.As(err, &cErr) || cErr.Field != "Function" {
		t.Errorf("bad variant: got %v", err)
	}
}

func TestSpacing(t *testing.T) {
	if got := Spacing(5); got != 2.5 {
		t.Errorf("Spacing(5) = %g, want 2.5", got)
	}
	if got := Spacing(11); math.Abs(got-1) > 1e-15 {
		t.Errorf("Spacing(11) = %g, want 1", got)
	}
}
