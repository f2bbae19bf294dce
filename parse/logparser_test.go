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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcrain/synodbench/consensus/stats"
	"github.com/tcrain/synodbench/consensus/types"
)

const akkaPrefix = "[INFO] [10/19/2026 12:00:00.123] [system-akka.actor.default-dispatcher-2] [akka://system/user] "

func paramLines(cfg types.Configuration) []string {
	var ret []string
	params := cfg.Params()
	for _, key := range types.AllParams {
		ret = append(ret, fmt.Sprintf("%vSystem started with %v=%v", akkaPrefix, key, params[key]))
	}
	return ret
}

// runLines returns the output of a run that reports the given decision times.
func runLines(cfg types.Configuration, latencies ...int) []string {
	ret := paramLines(cfg)
	ret = append(ret, "YOoooooooooooooooooooooooooooo")
	for _, nxt := range latencies {
		ret = append(ret, fmt.Sprintf("%vp%d decided time: %d", akkaPrefix, nxt%7, nxt))
	}
	return append(ret, akkaPrefix+"System is shutting down...")
}

func boundaryLine(j int) string {
	return fmt.Sprintf(BoundaryFormat, j)
}

func parseLines(t *testing.T, policy LatencyPolicy, lines []string) *LogResult {
	res, err := ParseLog(strings.NewReader(strings.Join(lines, "\n")), policy)
	require.Nil(t, err)
	return res
}

var parseConfigs = []types.Configuration{
	{N: 3, F: 1, Alpha: 0, TLE: 500},
	{N: 3, F: 1, Alpha: 0, TLE: 1000},
	{N: 3, F: 1, Alpha: 0.1, TLE: 500},
	{N: 10, F: 4, Alpha: 1, TLE: 2000},
}

func TestParseLogRecoversRuns(t *testing.T) {
	reps := 3
	var lines []string
	expected := make([][]float64, reps)
	for j := 0; j < reps; j++ {
		lines = append(lines, boundaryLine(j))
		for i, cfg := range parseConfigs {
			lat := 100*(j+1) + i
			expected[j] = append(expected[j], float64(lat))
			lines = append(lines, runLines(cfg, lat)...)
		}
	}
	res := parseLines(t, MinLatency, lines)

	require.Equal(t, reps, len(res.Repetitions))
	for j, rep := range res.Repetitions {
		assert.Equal(t, j, rep.Index)
		require.Equal(t, len(parseConfigs), len(rep.Runs))
		for i, nxt := range rep.Runs {
			assert.Equal(t, j, nxt.Repetition)
			assert.Equal(t, i, nxt.Position)
			assert.True(t, nxt.Decided)
			if j == 0 {
				require.NotNil(t, nxt.Config)
				assert.Equal(t, parseConfigs[i], *nxt.Config)
			} else {
				assert.Nil(t, nxt.Config)
			}
		}
	}
	assert.Equal(t, expected, res.Latencies())
	assert.Equal(t, parseConfigs, res.Configurations())
	assert.Equal(t, 0, res.IncompleteRuns)
	assert.Empty(t, res.Undecided())
	// one "YOooo" line per run
	assert.Equal(t, reps*len(parseConfigs), res.Unrecognized)
}

func TestParseLogMinLatency(t *testing.T) {
	lines := append([]string{boundaryLine(0)}, runLines(parseConfigs[0], 50, 30, 40)...)
	res := parseLines(t, MinLatency, lines)
	assert.Equal(t, [][]float64{{30}}, res.Latencies())
}

func TestParseLogFirstLatency(t *testing.T) {
	lines := append([]string{boundaryLine(0)}, runLines(parseConfigs[0], 50, 30, 40)...)
	res := parseLines(t, FirstLatency, lines)
	assert.Equal(t, [][]float64{{50}}, res.Latencies())
}

func TestParseLogDuplicateTermination(t *testing.T) {
	lines := []string{boundaryLine(0)}
	lines = append(lines, runLines(parseConfigs[0], 20)...)
	lines = append(lines, "System is shutting down...", "System is shutting down...")
	lines = append(lines, runLines(parseConfigs[1], 25)...)
	res := parseLines(t, MinLatency, lines)

	assert.Equal(t, [][]float64{{20, 25}}, res.Latencies())
	rep, ok := res.Repetition(0)
	require.True(t, ok)
	assert.Equal(t, 2, len(rep.Runs))
}

func TestParseLogUndecidedRun(t *testing.T) {
	var lines []string
	for j := 0; j < 2; j++ {
		lines = append(lines, boundaryLine(j))
		lines = append(lines, runLines(parseConfigs[0], 10)...)
		if j == 1 {
			// no decision in this run, and the shut down line is repeated
			lines = append(lines, runLines(parseConfigs[1])...)
			lines = append(lines, "System is shutting down...")
		} else {
			lines = append(lines, runLines(parseConfigs[1], 20)...)
		}
		lines = append(lines, runLines(parseConfigs[2], 30)...)
	}
	res := parseLines(t, MinLatency, lines)

	// the undecided run adds no latency and no zero
	assert.Equal(t, [][]float64{{10, 20, 30}, {10, 30}}, res.Latencies())

	// but it keeps its position
	rep, ok := res.Repetition(1)
	require.True(t, ok)
	require.Equal(t, 3, len(rep.Runs))
	assert.False(t, rep.Runs[1].Decided)
	assert.Equal(t, 2, rep.Runs[2].Position)
	assert.Equal(t, 30.0, rep.Runs[2].Latency)

	undecided := res.Undecided()
	require.Equal(t, 1, len(undecided))
	assert.Equal(t, 1, undecided[0].Repetition)
	assert.Equal(t, 1, undecided[0].Position)
}

func TestParseLogMissingParameter(t *testing.T) {
	lines := []string{boundaryLine(0)}
	lines = append(lines, runLines(parseConfigs[0], 10)...)
	run := runLines(parseConfigs[1], 20)
	// drop the alpha announcement
	lines = append(lines, append(run[:3:3], run[4:]...)...)

	_, err := ParseLog(strings.NewReader(strings.Join(lines, "\n")), MinLatency)
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, types.ErrIncompleteConfiguration))
	assert.Contains(t, err.Error(), "alpha")
	assert.Contains(t, err.Error(), "run 1")
}

func TestParseLogDuplicateParameter(t *testing.T) {
	lines := []string{boundaryLine(0), "System started with N=3", "System started with N=10"}
	_, err := ParseLog(strings.NewReader(strings.Join(lines, "\n")), MinLatency)
	assert.True(t, errors.Is(err, types.ErrDuplicateParameter))

	// a second full set of parameters in the same run
	lines = append([]string{boundaryLine(0)}, paramLines(parseConfigs[0])...)
	lines = append(lines, paramLines(parseConfigs[1])...)
	_, err = ParseLog(strings.NewReader(strings.Join(lines, "\n")), MinLatency)
	assert.True(t, errors.Is(err, types.ErrDuplicateParameter))
}

func TestParseLogIgnoresParametersAfterFirstRepetition(t *testing.T) {
	lines := []string{boundaryLine(0)}
	lines = append(lines, runLines(parseConfigs[0], 10)...)
	lines = append(lines, boundaryLine(1))
	// a partial and duplicated parameter set is not checked outside repetition 0
	lines = append(lines, "System started with N=3", "System started with N=3", "time: 11",
		"System is shutting down...")
	res := parseLines(t, MinLatency, lines)
	assert.Equal(t, [][]float64{{10}, {11}}, res.Latencies())
}

func TestParseLogIncompleteRuns(t *testing.T) {
	lines := []string{boundaryLine(0)}
	lines = append(lines, runLines(parseConfigs[0], 10)...)
	// crashed before shutting down
	lines = append(lines, paramLines(parseConfigs[1])...)
	lines = append(lines, "time: 5")
	lines = append(lines, boundaryLine(1))
	lines = append(lines, runLines(parseConfigs[0], 12)...)
	// log ends in the middle of a run
	lines = append(lines, "System started with N=3", "time: 9")
	res := parseLines(t, MinLatency, lines)

	assert.Equal(t, [][]float64{{10}, {12}}, res.Latencies())
	assert.Equal(t, 2, res.IncompleteRuns)
}

func TestParseLogMissingTerminationAfterFirstRepetition(t *testing.T) {
	var lines []string
	for j := 0; j < 2; j++ {
		lines = append(lines, boundaryLine(j))
		for i, nxt := range parseConfigs[:3] {
			run := runLines(nxt, 100*(i+1))
			if j == 1 && i == 0 {
				// no shut down line
				run = run[:len(run)-1]
			}
			lines = append(lines, run...)
		}
	}
	res := parseLines(t, MinLatency, lines)

	assert.Equal(t, 1, res.IncompleteRuns)
	rep, ok := res.Repetition(1)
	require.True(t, ok)
	// the run keeps its position as undecided and the later runs are not shifted
	require.Equal(t, 3, len(rep.Runs))
	assert.False(t, rep.Runs[0].Decided)
	for i, nxt := range rep.Runs {
		assert.Equal(t, i, nxt.Position)
	}
	assert.Equal(t, 200.0, rep.Runs[1].Latency)
	assert.Equal(t, 300.0, rep.Runs[2].Latency)

	rows, err := stats.Aggregate(res.Repetitions)
	require.Nil(t, err)
	require.Equal(t, 3, len(rows))
	assert.Equal(t, 100.0, rows[0].MeanLatency)
	assert.Equal(t, 1, rows[0].Undecided)
	assert.Equal(t, 200.0, rows[1].MeanLatency)
	assert.Equal(t, 300.0, rows[2].MeanLatency)
}

func TestParseLogRepeatedRepetition(t *testing.T) {
	lines := []string{boundaryLine(0)}
	lines = append(lines, runLines(parseConfigs[0], 10)...)
	lines = append(lines, boundaryLine(0))
	lines = append(lines, runLines(parseConfigs[1], 20)...)
	res := parseLines(t, MinLatency, lines)
	assert.Equal(t, [][]float64{{20}}, res.Latencies())
	assert.Equal(t, parseConfigs[1:2], res.Configurations())
}

func TestParseLogNoBoundary(t *testing.T) {
	// lines before any boundary belong to repetition 0
	res := parseLines(t, MinLatency, runLines(parseConfigs[3], 42))
	assert.Equal(t, [][]float64{{42}}, res.Latencies())
	assert.Equal(t, parseConfigs[3:], res.Configurations())
}

func TestLogParserStep(t *testing.T) {
	lp := NewLogParser(MinLatency)
	for _, nxt := range runLines(parseConfigs[0], 8, 6) {
		require.Nil(t, lp.Step(nxt))
	}
	res := lp.Result()
	assert.Equal(t, [][]float64{{6}}, res.Latencies())

	// the result is not changed by later lines
	for _, nxt := range runLines(parseConfigs[1], 3) {
		require.Nil(t, lp.Step(nxt))
	}
	assert.Equal(t, [][]float64{{6}}, res.Latencies())
	assert.Equal(t, [][]float64{{6, 3}}, lp.Result().Latencies())
}

func TestParseLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synod.log")
	lines := append([]string{boundaryLine(0)}, runLines(parseConfigs[0], 10)...)
	require.Nil(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))

	res, err := ParseLogFile(path, MinLatency)
	require.Nil(t, err)
	assert.Equal(t, [][]float64{{10}}, res.Latencies())

	_, err = ParseLogFile(filepath.Join(t.TempDir(), "missing.log"), MinLatency)
	assert.NotNil(t, err)
}

func TestParseLatencyPolicy(t *testing.T) {
	p, err := ParseLatencyPolicy("min")
	assert.Nil(t, err)
	assert.Equal(t, MinLatency, p)
	p, err = ParseLatencyPolicy("first")
	assert.Nil(t, err)
	assert.Equal(t, FirstLatency, p)
	_, err = ParseLatencyPolicy("max")
	assert.True(t, errors.Is(err, types.ErrInvalidLatencyPolicy))
	assert.Equal(t, "first", FirstLatency.String())
}
