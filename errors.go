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

package cubism

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the error class of all configuration problems.
// Use errors.Is to test for it; the concrete error is a [*ConfigError].
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError reports a configuration field which violates a constraint.
type ConfigError struct {
	Field  string // name of the Config field, e.g. "Count"
	Value  any    // the offending value
	Reason string // the violated constraint, e.g. "must be at least 2"

	// Err is an optional underlying cause.
	Err error
}

func (err *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s %v %s", ErrInvalidConfiguration, err.Field, err.Value, err.Reason)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

// Is reports whether target is [ErrInvalidConfiguration].
func (err *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}
