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

// Package cubism turns the slope of a mathematical function into a
// picture made of overlapping polygon fragments.
//
// A function is sampled at evenly spaced points of [-5, 5], its derivative
// is estimated by finite differences, and every sample becomes a small
// triangle or quadrilateral.  The fragment is rotated to follow the local
// slope, coloured by the normalised slope magnitude and enlarged where the
// function is steep.  The result is a [Scene], which can be drawn by the
// raster, pdfscene and ggscene packages.
//
// The pipeline is deterministic: equal configurations give equal scenes.
package cubism

//go:generate go run ./testcases/export

// Render validates cfg and computes the corresponding scene.
// If the configuration is invalid, the error is a [*ConfigError] and no
// work is done.
func Render(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mapper, err := NewMapper(&cfg)
	if err != nil {
		return nil, err
	}

	samples, err := SampleFunction(cfg.Function, cfg.Count)
	if err != nil {
		return nil, err
	}
	derivs := EstimateDerivative(samples, Spacing(cfg.Count))

	frags, err := mapper.Map(samples, derivs)
	if err != nil {
		return nil, err
	}
	sc := Compose(samples, frags, cfg.Margin, cfg.Background)

	Logger().Debug("scene composed",
		"function", cfg.Function.String(),
		"count", cfg.Count,
		"shape", cfg.Shape.String(),
		"palette", mapper.Palette.Name(),
		"maxAbsPrime", MaxAbsPrime(derivs),
		"yMin", sc.YRange.Min,
		"yMax", sc.YRange.Max)

	return sc, nil
}
