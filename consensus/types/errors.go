/*
github.com/tcrain/synodbench - Experimental project for measuring consensus decision latency.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package types

import (
	"fmt"
)

// configuration
var ErrInvalidConfiguration = fmt.Errorf("invalid configuration")
var ErrAxisMismatch = fmt.Errorf("f values must be paired with n values")
var ErrInvalidLatencyPolicy = fmt.Errorf("invalid latency policy")

// log parsing
var ErrIncompleteConfiguration = fmt.Errorf("run terminated before all parameters were announced")
var ErrDuplicateParameter = fmt.Errorf("parameter announced twice in the same run")

// aggregation
var ErrNoReferenceRepetition = fmt.Errorf("repetition 0 not found in log")
var ErrMissingConfiguration = fmt.Errorf("no configuration recorded for position")
var ErrSweepMismatch = fmt.Errorf("log does not match the sweep")

// run driver
var ErrEmptyCommand = fmt.Errorf("empty command")
var ErrRunFailed = fmt.Errorf("external program exited with an error")
