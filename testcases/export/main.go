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

// Command export writes the scenes of all test cases to JSON, so that they
// can be compared with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/cubism"
	"seehuhn.de/go/cubism/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string         `json:"name"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Config     cubism.Config  `json:"config"`
	XRange     [2]float64     `json:"x_range"`
	YRange     [2]float64     `json:"y_range"`
	Background string         `json:"background"`
	Fragments  []jsonFragment `json:"fragments"`
}

type jsonFragment struct {
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	Shape       string       `json:"shape"`
	Rotation    float64      `json:"rotation"`
	Scale       float64      `json:"scale"`
	Intensity   float64      `json:"intensity"`
	Fill        string       `json:"fill"`
	Stroke      string       `json:"stroke,omitempty"`
	StrokeWidth float64      `json:"stroke_width,omitempty"`
	Vertices    [][2]float64 `json:"vertices"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	sc, err := cubism.Render(tc.Config)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Config:     tc.Config,
		XRange:     [2]float64{sc.XRange.Min, sc.XRange.Max},
		YRange:     [2]float64{sc.YRange.Min, sc.YRange.Max},
		Background: hexColor(sc.Background),
	}
	for _, f := range sc.Fragments {
		jf := jsonFragment{
			X:         f.Anchor.X,
			Y:         f.Anchor.Y,
			Shape:     f.Shape.String(),
			Rotation:  f.Rotation,
			Scale:     f.Scale,
			Intensity: f.Intensity,
			Fill:      hexColor(f.Fill),
		}
		if f.StrokeWidth > 0 {
			jf.Stroke = hexColor(f.Stroke)
			jf.StrokeWidth = f.StrokeWidth
		}
		for _, v := range f.Vertices {
			jf.Vertices = append(jf.Vertices, [2]float64{v.X, v.Y})
		}
		jtc.Fragments = append(jtc.Fragments, jf)
	}
	return jtc, nil
}

// hexColor formats c as #rrggbbaa.
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
