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

import "seehuhn.de/go/cubism"

// smoothCases contains scenes of differentiable functions.
var smoothCases = []TestCase{
	{
		Name:   "sine_default",
		Config: scene(cubism.SymmetricSine, cubism.DefaultCount),
		Width:  240,
		Height: 200,
	},
	{
		Name:   "sine_two_samples",
		Config: scene(cubism.SymmetricSine, cubism.MinCount),
		Width:  240,
		Height: 200,
	},
	{
		Name:   "sine_dense",
		Config: scene(cubism.SymmetricSine, cubism.MaxCount),
		Width:  480,
		Height: 400,
	},

	// 0.1 x³ - x has slopes up to 6.5 at the ends, so the outer fragments
	// are boosted while the middle ones are not.
	{
		Name:   "polynomial",
		Config: scene(cubism.Polynomial, cubism.DefaultCount),
		Width:  240,
		Height: 320,
	},
	{
		Name:   "polynomial_no_boost",
		Config: scene(cubism.Polynomial, cubism.DefaultCount, withThreshold(1000)),
		Width:  240,
		Height: 320,
	},
}
