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

// shapeCases vary the base shapes of the fragments.
var shapeCases = []TestCase{
	{
		Name:   "quads",
		Config: scene(cubism.SymmetricSine, 80, withShape(cubism.Quads)),
		Width:  240,
		Height: 200,
	},
	{
		Name:   "mixed",
		Config: scene(cubism.Polynomial, 80, withShape(cubism.Mixed)),
		Width:  240,
		Height: 320,
	},
	{
		Name:   "jitter",
		Config: scene(cubism.SymmetricSine, 80, withJitter(0.25, 1)),
		Width:  240,
		Height: 200,
	},
	{
		Name:   "mixed_jitter",
		Config: scene(cubism.Step, 60, withShape(cubism.Mixed), withJitter(0.4, 7)),
		Width:  240,
		Height: 200,
	},
}
