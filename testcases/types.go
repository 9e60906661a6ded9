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

package testcases

import (
	"seehuhn.de/go/cubism"
)

// TestCase defines a single scene to render.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Config cubism.Config // the render request
	Width  int           // output width in pixels
	Height int           // output height in pixels
}

// Option modifies a configuration.
type Option func(*cubism.Config)

// scene returns the default configuration for function v with n
// fragments, modified by opts.
func scene(v cubism.Variant, n int, opts ...Option) cubism.Config {
	cfg := cubism.DefaultConfig()
	cfg.Function = v
	cfg.Count = n
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func withPalette(name string) Option {
	return func(cfg *cubism.Config) { cfg.Palette = name }
}

func withShape(s cubism.ShapeFamily) Option {
	return func(cfg *cubism.Config) { cfg.Shape = s }
}

func withJitter(j float64, seed uint64) Option {
	return func(cfg *cubism.Config) {
		cfg.Jitter = j
		cfg.Seed = seed
	}
}

func withThreshold(threshold float64) Option {
	return func(cfg *cubism.Config) { cfg.Threshold = threshold }
}
