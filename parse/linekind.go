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

package parse

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tcrain/synodbench/consensus/types"
)

// LineKind is the kind of event a log line reports.
type LineKind int

const (
	Unrecognized LineKind = iota // any other output, ignored
	Boundary                     // "Experiment number: <j>", start of a repetition
	Parameter                    // "System started with <key>=<value>"
	Latency                      // "time: <value>", a process decided
	Termination                  // "System is shutting down...", end of a run
)

func (lk LineKind) String() string {
	switch lk {
	case Unrecognized:
		return "Unrecognized"
	case Boundary:
		return "Boundary"
	case Parameter:
		return "Parameter"
	case Latency:
		return "Latency"
	case Termination:
		return "Termination"
	default:
		return fmt.Sprintf("LineKind%d", int(lk))
	}
}

// BoundaryFormat is the format of the line the run driver writes before each repetition.
const BoundaryFormat = "Experiment number: %d"

// TerminationLine ends a run. The run driver appends it after a run that failed, a second
// termination of the same run is ignored by the parser.
const TerminationLine = "System is shutting down..."

// The lines are prefixed by timestamps and logger names so the patterns are not anchored at the start.
var (
	boundaryRegex    = regexp.MustCompile(`Experiment number:\s*(\d+)`)
	parameterRegex   = regexp.MustCompile(`System started with (N|tle|f|alpha)=(\S+)`)
	latencyRegex     = regexp.MustCompile(`(?:^|[^\w])time:\s*([-+]?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?)`)
	terminationRegex = regexp.MustCompile(`System is shutting down`)
)

// Line is a classified log line.
type Line struct {
	Kind       LineKind
	Repetition int     // for Boundary
	Key        string  // for Parameter
	Value      string  // for Parameter
	Latency    float64 // for Latency
}

// ClassifyLine returns the kind of the line and the values it carries.
// A line that matches a pattern but whose value can not be parsed is Unrecognized.
func ClassifyLine(line string) Line {
	if m := boundaryRegex.FindStringSubmatch(line); m != nil {
		j, err := strconv.Atoi(m[1])
		if err != nil {
			return Line{}
		}
		return Line{Kind: Boundary, Repetition: j}
	}
	if m := parameterRegex.FindStringSubmatch(line); m != nil {
		if !validParam(m[1], m[2]) {
			return Line{}
		}
		return Line{Kind: Parameter, Key: m[1], Value: m[2]}
	}
	if terminationRegex.MatchString(line) {
		return Line{Kind: Termination}
	}
	if m := latencyRegex.FindStringSubmatch(line); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Line{}
		}
		return Line{Kind: Latency, Latency: v}
	}
	return Line{}
}

func validParam(key, value string) bool {
	var err error
	switch key {
	case types.ParamAlpha:
		_, err = strconv.ParseFloat(value, 64)
	default:
		_, err = strconv.Atoi(value)
	}
	return err == nil
}

// setParam sets the field of cfg named by key, the value must have been checked by validParam.
func setParam(cfg *types.Configuration, key, value string) {
	switch key {
	case types.ParamN:
		cfg.N, _ = strconv.Atoi(value)
	case types.ParamF:
		cfg.F, _ = strconv.Atoi(value)
	case types.ParamTLE:
		cfg.TLE, _ = strconv.Atoi(value)
	case types.ParamAlpha:
		cfg.Alpha, _ = strconv.ParseFloat(value, 64)
	default:
		panic(key)
	}
}
