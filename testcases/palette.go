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

var paletteCases = []TestCase{
	{
		Name:   "viridis",
		Config: scene(cubism.SpikyWave, 100, withPalette("viridis")),
		Width:  240,
		Height: 200,
	},
	{
		Name:   "inferno",
		Config: scene(cubism.SpikyWave, 100, withPalette("inferno")),
		Width:  240,
		Height: 200,
	},
	{
		Name:   "coolwarm",
		Config: scene(cubism.SpikyWave, 100, withPalette("coolwarm")),
		Width:  240,
		Height: 200,
	},
}
