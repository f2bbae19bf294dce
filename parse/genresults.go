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
	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/stats"
	"github.com/tcrain/synodbench/consensus/types"
)

// GenResults parses the log at logPath, averages the latencies of the repetitions and writes
// the results to folderPath. If expected is not nil the configurations found in the log must be
// the ones of expected in the same order.
func GenResults(logPath, folderPath string, policy LatencyPolicy,
	expected []types.Configuration) ([]types.AggregatedRow, error) {

	res, err := ParseLogFile(logPath, policy)
	if err != nil {
		return nil, err
	}
	logging.WithFields(logging.Fields{
		"repetitions":  len(res.Repetitions),
		"unrecognized": res.Unrecognized,
		"incomplete":   res.IncompleteRuns,
	}).Info("Parsed log ", logPath)

	rows, err := stats.Aggregate(res.Repetitions)
	if err != nil {
		return nil, err
	}
	if expected != nil {
		if err = stats.CheckAlignment(rows, expected); err != nil {
			logging.Error(err)
			return nil, err
		}
	}
	for _, nxt := range stats.UndecidedRows(rows) {
		entry := logging.WithFields(logging.Fields{
			"config":    nxt.Configuration.String(),
			"decided":   nxt.Samples,
			"undecided": nxt.Undecided,
		})
		if nxt.NoDecision() {
			entry.Warning("configuration never decided, tle may be too small")
		} else {
			entry.Warning("configuration did not decide in every repetition")
		}
	}

	if err = WriteResults(folderPath, ResultFile{
		LatencyPolicy:  policy.String(),
		LogFile:        logPath,
		Rows:           rows,
		Unrecognized:   res.Unrecognized,
		IncompleteRuns: res.IncompleteRuns,
	}); err != nil {
		logging.Error(err)
		return nil, err
	}
	if _, err = MakeOutput(folderPath, rows); err != nil {
		return nil, err
	}
	return rows, nil
}
