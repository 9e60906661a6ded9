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
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid test case name %q", category, tc.Name)
			}
			full := category + "_" + tc.Name
			if seen[full] {
				t.Errorf("duplicate test case %q", full)
			}
			seen[full] = true
		}
	}
}

func TestConfigsValid(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			if err := tc.Config.Validate(); err != nil {
				t.Errorf("%s_%s: %v", category, tc.Name, err)
			}
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s_%s: invalid size %dx%d", category, tc.Name, tc.Width, tc.Height)
			}
		}
	}
}
