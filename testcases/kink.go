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

// kinkCases contains scenes of |x|, where the slope changes sign at the
// origin.
var kinkCases = []TestCase{
	{
		Name:   "abs_default",
		Config: scene(cubism.AbsoluteValue, cubism.DefaultCount),
		Width:  240,
		Height: 200,
	},
	{
		// with an odd count the origin is a sample point and its fragment
		// is horizontal
		Name:   "abs_five",
		Config: scene(cubism.AbsoluteValue, 5),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "abs_even",
		Config: scene(cubism.AbsoluteValue, 40),
		Width:  240,
		Height: 200,
	},
}
