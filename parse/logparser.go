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
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"

	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/types"
	"github.com/tcrain/synodbench/consensus/utils"
)

// LatencyPolicy decides which decision time is the latency of a run when several processes
// report one before the run shuts down.
type LatencyPolicy int

const (
	MinLatency   LatencyPolicy = iota // the earliest decision reported during the run
	FirstLatency                      // the first decision line, later ones are ignored
)

func (lp LatencyPolicy) String() string {
	switch lp {
	case MinLatency:
		return "min"
	case FirstLatency:
		return "first"
	default:
		return fmt.Sprintf("LatencyPolicy%d", int(lp))
	}
}

// ParseLatencyPolicy returns the policy named by s ("min" or "first").
func ParseLatencyPolicy(s string) (LatencyPolicy, error) {
	switch s {
	case "min":
		return MinLatency, nil
	case "first":
		return FirstLatency, nil
	default:
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidLatencyPolicy, s)
	}
}

// LogParser rebuilds the runs of each repetition from the lines of the log.
// The lines are given one by one to Step, the parser keeps all its state itself.
type LogParser struct {
	policy  LatencyPolicy
	lineNum int

	current int                       // repetition the lines belong to
	reps    map[int]*types.Repetition // runs found so far, by repetition

	// state of the current run
	runOpen              bool                 // a line of the run was seen since the last termination
	awaitingFirstLatency bool                 // no decision time seen yet in this run
	minLatency           float64              // latency of the run so far
	pending              map[string]string    // parameters announced so far (repetition 0 only)
	sealed               *types.Configuration // configuration of the run once all parameters are known
	seenN                bool                 // the N parameter of the run was announced

	unrecognized int
	incomplete   int
}

// NewLogParser returns a parser starting in repetition 0.
func NewLogParser(policy LatencyPolicy) *LogParser {
	lp := &LogParser{
		policy: policy,
		reps:   make(map[int]*types.Repetition),
	}
	lp.resetRun()
	return lp
}

func (lp *LogParser) resetRun() {
	lp.runOpen = false
	lp.awaitingFirstLatency = true
	lp.minLatency = 0
	lp.pending = make(map[string]string)
	lp.sealed = nil
	lp.seenN = false
}

func (lp *LogParser) repetition() *types.Repetition {
	rep, ok := lp.reps[lp.current]
	if !ok {
		rep = &types.Repetition{Index: lp.current}
		lp.reps[lp.current] = rep
	}
	return rep
}

// Step consumes the next line of the log. An error is returned if repetition 0 does not
// announce exactly one full set of parameters for a run.
func (lp *LogParser) Step(raw string) error {
	lp.lineNum++
	return lp.StepLine(ClassifyLine(raw))
}

// StepLine consumes an already classified line.
func (lp *LogParser) StepLine(l Line) error {
	switch l.Kind {
	case Boundary:
		lp.startRepetition(l.Repetition)
	case Parameter:
		return lp.addParam(l.Key, l.Value)
	case Latency:
		lp.runOpen = true
		switch {
		case lp.awaitingFirstLatency:
			lp.minLatency = l.Latency
			lp.awaitingFirstLatency = false
		case lp.policy == MinLatency:
			lp.minLatency = utils.Min(lp.minLatency, l.Latency)
		}
	case Termination:
		return lp.endRun()
	default:
		lp.unrecognized++
	}
	return nil
}

func (lp *LogParser) startRepetition(j int) {
	if lp.runOpen {
		lp.dropRun()
	}
	if prev, ok := lp.reps[j]; ok && len(prev.Runs) > 0 {
		logging.WithFields(logging.Fields{"repetition": j, "line": lp.lineNum}).Warning(
			"repetition found twice in log, dropping the earlier runs")
	}
	lp.current = j
	lp.reps[j] = &types.Repetition{Index: j}
}

func (lp *LogParser) dropRun() {
	lp.incomplete++
	logging.WithFields(logging.Fields{"repetition": lp.current, "line": lp.lineNum}).Warning(
		"run did not shut down, dropping it")
	lp.resetRun()
}

// abandonRun keeps the position of a run that was followed by another run without shutting
// down, it is recorded as undecided and counted as incomplete.
func (lp *LogParser) abandonRun() {
	rep := lp.repetition()
	lp.incomplete++
	logging.WithFields(logging.Fields{"repetition": lp.current, "position": len(rep.Runs),
		"line": lp.lineNum}).Warning("run did not shut down before the next run started")
	rep.Runs = append(rep.Runs, types.RunRecord{Repetition: lp.current, Position: len(rep.Runs)})
	lp.resetRun()
}

func (lp *LogParser) addParam(key, value string) error {
	if lp.current != 0 {
		// every repetition runs the same sequence, so the parameters are only read once,
		// a second N in the same run means the previous run never shut down
		if key == types.ParamN {
			if lp.seenN {
				lp.abandonRun()
			}
			lp.seenN = true
		}
		lp.runOpen = true
		return nil
	}
	lp.runOpen = true
	position := len(lp.repetition().Runs)
	if _, ok := lp.pending[key]; ok || lp.sealed != nil {
		return fmt.Errorf("line %v, run %v: %w: %v", lp.lineNum, position, types.ErrDuplicateParameter, key)
	}
	lp.pending[key] = value
	if len(lp.pending) < len(types.AllParams) {
		return nil
	}
	var cfg types.Configuration
	for k, v := range lp.pending {
		setParam(&cfg, k, v)
	}
	lp.sealed = &cfg
	lp.pending = make(map[string]string)
	return nil
}

func (lp *LogParser) missingParams() (ret []string) {
	for _, nxt := range types.AllParams {
		if _, ok := lp.pending[nxt]; !ok {
			ret = append(ret, nxt)
		}
	}
	return
}

func (lp *LogParser) endRun() error {
	if !lp.runOpen {
		// a repeated shut down line for a run that already ended
		return nil
	}
	rep := lp.repetition()
	rec := types.RunRecord{
		Repetition: lp.current,
		Position:   len(rep.Runs),
		Decided:    !lp.awaitingFirstLatency,
	}
	if rec.Decided {
		rec.Latency = lp.minLatency
	}
	if lp.current == 0 {
		if lp.sealed == nil {
			return fmt.Errorf("line %v, run %v: %w: missing %v", lp.lineNum, rec.Position,
				types.ErrIncompleteConfiguration, lp.missingParams())
		}
		rec.Config = lp.sealed
	}
	rep.Runs = append(rep.Runs, rec)
	lp.resetRun()
	return nil
}

// Result returns the runs parsed so far. A run that has not shut down yet is counted
// as incomplete and not included.
func (lp *LogParser) Result() *LogResult {
	ret := &LogResult{
		Unrecognized:   lp.unrecognized,
		IncompleteRuns: lp.incomplete,
	}
	if lp.runOpen {
		ret.IncompleteRuns++
	}
	for _, idx := range utils.SortedKeys(lp.reps) {
		rep := lp.reps[idx]
		runs := make([]types.RunRecord, len(rep.Runs))
		for i, nxt := range rep.Runs {
			if nxt.Config != nil {
				cfg := *nxt.Config
				nxt.Config = &cfg
			}
			runs[i] = nxt
		}
		ret.Repetitions = append(ret.Repetitions, types.Repetition{Index: idx, Runs: runs})
	}
	return ret
}

// LogResult is the content of a parsed log.
type LogResult struct {
	Repetitions    []types.Repetition // sorted by index
	Unrecognized   int                // lines that were not recognized
	IncompleteRuns int                // runs that never shut down
}

// Repetition returns the repetition with index idx.
func (lr *LogResult) Repetition(idx int) (types.Repetition, bool) {
	i := slices.IndexFunc(lr.Repetitions, func(r types.Repetition) bool { return r.Index == idx })
	if i < 0 {
		return types.Repetition{}, false
	}
	return lr.Repetitions[i], true
}

// Latencies returns for each repetition the latencies of its decided runs, in run order.
func (lr *LogResult) Latencies() [][]float64 {
	ret := make([][]float64, len(lr.Repetitions))
	for i, nxt := range lr.Repetitions {
		ret[i] = nxt.Latencies()
	}
	return ret
}

// Configurations returns the configurations of the runs of repetition 0 in run order.
func (lr *LogResult) Configurations() []types.Configuration {
	rep, ok := lr.Repetition(0)
	if !ok {
		return nil
	}
	ret := make([]types.Configuration, len(rep.Runs))
	for i, nxt := range rep.Runs {
		ret[i] = *nxt.Config
	}
	return ret
}

// Undecided returns the runs that shut down without reporting a decision time.
func (lr *LogResult) Undecided() (ret []types.RunRecord) {
	for _, rep := range lr.Repetitions {
		for _, nxt := range rep.Runs {
			if !nxt.Decided {
				ret = append(ret, nxt)
			}
		}
	}
	return
}

// ParseLog reads the log line by line and returns the runs it contains.
func ParseLog(reader io.Reader, policy LatencyPolicy) (*LogResult, error) {
	lp := NewLogParser(policy)
	scn := bufio.NewScanner(reader)
	scn.Buffer(make([]byte, 64*1024), 1024*1024)
	for scn.Scan() {
		if err := lp.Step(scn.Text()); err != nil {
			logging.Error(err)
			return nil, err
		}
	}
	if err := scn.Err(); err != nil {
		logging.Error(err)
		return nil, err
	}
	ret := lp.Result()
	if lp.runOpen {
		logging.WithFields(logging.Fields{"repetition": lp.current}).Warning(
			"log ended before the last run shut down, dropping it")
	}
	return ret, nil
}

// ParseLogFile parses the log stored at filePath.
func ParseLogFile(filePath string, policy LatencyPolicy) (*LogResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		logging.Error(err)
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return ParseLog(file, policy)
}
