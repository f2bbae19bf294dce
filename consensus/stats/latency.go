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

/*
Combining the latencies of the repetitions of a sweep.

Runs are matched across repetitions by their position in the repetition, not by their
configuration, since every repetition runs the sweep in the same order. Only repetition 0
records the configurations. When a repetition has no latency at a position (the run did not
decide, or the repetition is shorter) the mean at that position is taken over the repetitions
that do have one.
*/
package stats

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/types"
	"github.com/tcrain/synodbench/consensus/utils"
)

// MeanByPosition returns for each position p the mean of reps[j][p] over the repetitions j
// that have a value at p. The result is as long as the longest repetition.
func MeanByPosition(reps [][]float64) []float64 {
	var maxLen int
	for _, nxt := range reps {
		maxLen = utils.Max(maxLen, len(nxt))
	}
	ret := make([]float64, maxLen)
	for p := range ret {
		var samples []float64
		for _, nxt := range reps {
			if p < len(nxt) {
				samples = append(samples, nxt[p])
			}
		}
		ret[p] = stat.Mean(samples, nil)
	}
	return ret
}

// Aggregate computes one row per run position found in the repetitions, labeled with the
// configuration repetition 0 recorded at that position.
func Aggregate(reps []types.Repetition) ([]types.AggregatedRow, error) {
	refIdx := slices.IndexFunc(reps, func(r types.Repetition) bool { return r.Index == 0 })
	if refIdx < 0 {
		logging.Error(types.ErrNoReferenceRepetition)
		return nil, types.ErrNoReferenceRepetition
	}
	ref := reps[refIdx]

	var maxLen int
	for _, nxt := range reps {
		maxLen = utils.Max(maxLen, len(nxt.Runs))
	}
	ret := make([]types.AggregatedRow, maxLen)
	for p := range ret {
		if p >= len(ref.Runs) || ref.Runs[p].Config == nil {
			err := fmt.Errorf("%w: %v", types.ErrMissingConfiguration, p)
			logging.Error(err)
			return nil, err
		}
		row := types.AggregatedRow{Position: p, Configuration: *ref.Runs[p].Config}
		var samples []float64
		for _, rep := range reps {
			if p >= len(rep.Runs) {
				continue
			}
			if rep.Runs[p].Decided {
				samples = append(samples, rep.Runs[p].Latency)
			} else {
				row.Undecided++
			}
		}
		fillLatency(&row, samples)
		ret[p] = row
	}
	return ret, nil
}

func fillLatency(row *types.AggregatedRow, samples []float64) {
	row.Samples = len(samples)
	if len(samples) == 0 {
		return
	}
	row.MeanLatency = stat.Mean(samples, nil)
	row.MinLatency = floats.Min(samples)
	row.MaxLatency = floats.Max(samples)
	if len(samples) > 1 {
		row.StdDev = stat.StdDev(samples, nil)
	}
}

// CheckAlignment returns an error if the configurations of the rows are not those of expected
// in the same order.
func CheckAlignment(rows []types.AggregatedRow, expected []types.Configuration) error {
	if len(rows) != len(expected) {
		return fmt.Errorf("%w: log has %v runs per repetition, sweep has %v", types.ErrSweepMismatch,
			len(rows), len(expected))
	}
	for i, nxt := range rows {
		if nxt.Configuration != expected[i] {
			return fmt.Errorf("%w: position %v, %v", types.ErrSweepMismatch, i,
				expected[i].StringDiff(nxt.Configuration))
		}
	}
	return nil
}

// UndecidedRows returns the rows where at least one repetition did not decide.
func UndecidedRows(rows []types.AggregatedRow) (ret []types.AggregatedRow) {
	for _, nxt := range rows {
		if nxt.Undecided > 0 {
			ret = append(ret, nxt)
		}
	}
	return
}
