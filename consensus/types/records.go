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
	"time"
)

// RunRecord is one completed run of the consensus program as found in the log.
type RunRecord struct {
	Repetition int
	Position   int            // index of the run within its repetition
	Config     *Configuration // only set for repetition 0
	Latency    float64        // decision time in milliseconds, valid if Decided
	Decided    bool           // false if the run terminated without reporting a decision time
}

// Repetition is the list of runs found after an "Experiment number" line.
type Repetition struct {
	Index int
	Runs  []RunRecord
}

// Latencies returns the latencies of the decided runs in run order.
func (r Repetition) Latencies() []float64 {
	ret := make([]float64, 0, len(r.Runs))
	for _, nxt := range r.Runs {
		if nxt.Decided {
			ret = append(ret, nxt.Latency)
		}
	}
	return ret
}

// AggregatedRow is the latency of a configuration averaged over all the repetitions.
type AggregatedRow struct {
	Position int
	Configuration
	MeanLatency float64
	MinLatency  float64
	MaxLatency  float64
	StdDev      float64
	Samples     int // number of repetitions that decided at this position
	Undecided   int // number of repetitions that ran this position without deciding
}

// NoDecision returns true if no repetition decided for this configuration, in this case
// the latency fields are not valid.
func (ar AggregatedRow) NoDecision() bool {
	return ar.Samples == 0
}

// RunStatus is what the run driver knows about a single execution of the consensus program.
type RunStatus struct {
	Repetition int
	Position   int
	Configuration
	ExitCode int
	Err      string `json:",omitempty"`
	Duration time.Duration
}

// Failed returns true if the program did not exit cleanly.
func (rs RunStatus) Failed() bool {
	return rs.ExitCode != 0 || rs.Err != ""
}
