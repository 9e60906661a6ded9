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

// jumpCases contains discontinuous functions.  The difference quotient
// across a jump is a spike, which gives the brightest and largest
// fragments of the scene.
var jumpCases = []TestCase{
	{
		Name:   "step_default",
		Config: scene(cubism.Step, cubism.DefaultCount),
		Width:  240,
		Height: 200,
	},
	{
		Name:   "step_five",
		Config: scene(cubism.Step, 5),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "spiky_default",
		Config: scene(cubism.SpikyWave, cubism.DefaultCount),
		Width:  240,
		Height: 200,
	},
	{
		Name:   "spiky_dense",
		Config: scene(cubism.SpikyWave, cubism.MaxCount),
		Width:  480,
		Height: 400,
	},
}
