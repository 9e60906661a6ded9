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

package cubism_test

import (
	"bytes"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/cubism"
	"seehuhn.de/go/cubism/testcases"
)

func checkScene(t *testing.T, cfg cubism.Config, sc *cubism.Scene) {
	t.Helper()

	if len(sc.Fragments) != cfg.Count {
		t.Fatalf("got %d fragments, want %d", len(sc.Fragments), cfg.Count)
	}
	for i, f := range sc.Fragments {
		if !(f.Rotation > -90 && f.Rotation <= 90) {
			t.Errorf("fragment %d: rotation %g outside (-90, 90]", i, f.Rotation)
		}
		if f.Intensity < 0 || f.Intensity > 1 {
			t.Errorf("fragment %d: intensity %g outside [0, 1]", i, f.Intensity)
		}
		if f.Scale != 1 && f.Scale != cfg.Boost {
			t.Errorf("fragment %d: scale %g", i, f.Scale)
		}
		if f.Fill.A != sc.Fragments[0].Fill.A {
			t.Errorf("fragment %d: alpha %d differs from fragment 0", i, f.Fill.A)
		}
		if i > 0 && f.Anchor.X <= sc.Fragments[i-1].Anchor.X {
			t.Errorf("fragment %d: anchors out of order", i)
		}
		if f.Anchor.Y < sc.YRange.Min || f.Anchor.Y > sc.YRange.Max {
			t.Errorf("fragment %d: anchor %v outside y range %v", i, f.Anchor, sc.YRange)
		}
	}
	if sc.XRange != cubism.DefaultXRange {
		t.Errorf("XRange = %v", sc.XRange)
	}
}

func TestRenderTestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				sc, err := cubism.Render(tc.Config)
				if err != nil {
					t.Fatal(err)
				}
				checkScene(t, tc.Config, sc)
			})
		}
	}
}

func TestRenderAllVariants(t *testing.T) {
	for _, v := range cubism.Variants() {
		for _, n := range []int{2, 3, 4, 7, 150, 300} {
			cfg := cubism.DefaultConfig()
			cfg.Function = v
			cfg.Count = n
			sc, err := cubism.Render(cfg)
			if err != nil {
				t.Fatalf("%s, n=%d: %v", v, n, err)
			}
			checkScene(t, cfg, sc)
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	cfg := cubism.DefaultConfig()
	cfg.Count = 1
	sc, err := cubism.Render(cfg)
	if sc != nil {
		t.Error("got a scene for an invalid configuration")
	}
	if !errors.Is(err, cubism.ErrInvalidConfiguration) {
		t.Fatalf("Render() error = %v", err)
	}
	var cErr *cubism.ConfigError
	if !errors.As(err, &cErr) || cErr.Field != "Count" {
		t.Errorf("error %v does not name Count", err)
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := cubism.DefaultConfig()
	cfg.Function = cubism.SpikyWave
	cfg.Shape = cubism.Mixed
	cfg.Jitter = 0.2
	cfg.Seed = 42

	a, err := cubism.Render(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := cubism.Render(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("scenes differ:\n%s", d)
	}
}

// TestRenderStepSpike checks that the fragment at the jump of the step
// function is the brightest and is enlarged.
func TestRenderStepSpike(t *testing.T) {
	cfg := cubism.DefaultConfig()
	cfg.Function = cubism.Step
	cfg.Count = 101 // x = 0 is a sample point
	sc, err := cubism.Render(cfg)
	if err != nil {
		t.Fatal(err)
	}

	mid := sc.Fragments[50]
	if mid.Anchor.X != 0 {
		t.Fatalf("fragment 50 at x=%g", mid.Anchor.X)
	}
	for i, f := range sc.Fragments {
		if f.Intensity > mid.Intensity {
			t.Errorf("fragment %d brighter than the jump", i)
		}
	}
	if mid.Scale != cfg.Boost {
		t.Errorf("jump fragment scale %g, want %g", mid.Scale, cfg.Boost)
	}
	if sc.Fragments[0].Intensity != 0 {
		t.Errorf("flat fragment intensity %g", sc.Fragments[0].Intensity)
	}
}

func TestRenderLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	cubism.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer cubism.SetLogger(nil)

	cfg := cubism.DefaultConfig()
	cfg.Function = cubism.AbsoluteValue
	if _, err := cubism.Render(cfg); err != nil {
		t.Fatal(err)
	}

	samples, err := cubism.SampleFunction(cfg.Function, cfg.Count)
	if err != nil {
		t.Fatal(err)
	}
	derivs := cubism.EstimateDerivative(samples, cubism.Spacing(cfg.Count))
	maxAbs := strconv.FormatFloat(cubism.MaxAbsPrime(derivs), 'g', -1, 64)

	out := buf.String()
	for _, want := range []string{"function=abs", "count=150", "maxAbsPrime=" + maxAbs} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
