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

package bench

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tcrain/synodbench/config"
	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/types"
	"github.com/tcrain/synodbench/consensus/utils"
	"github.com/tcrain/synodbench/gento"
	"github.com/tcrain/synodbench/parse"
)

// number of runs the remaining time estimate is computed over
const durationWindow = 10

// Driver runs a schedule one configuration at a time, all output goes to a single log file.
type Driver struct {
	logPath  string
	template CommandTemplate
	executor Executor
	metrics  *Metrics // may be nil
}

// NewDriver creates a driver writing to logPath. metrics may be nil.
func NewDriver(logPath string, template CommandTemplate, executor Executor, metrics *Metrics) (*Driver, error) {
	if err := template.Check(); err != nil {
		return nil, err
	}
	return &Driver{
		logPath:  logPath,
		template: template,
		executor: executor,
		metrics:  metrics,
	}, nil
}

// LogPath returns the path of the log file.
func (d *Driver) LogPath() string {
	return d.logPath
}

// ResetLog removes the log file and creates an empty one.
func (d *Driver) ResetLog() error {
	if err := os.Remove(d.logPath); err != nil && !os.IsNotExist(err) {
		logging.Error(err)
		return err
	}
	f, err := os.OpenFile(d.logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.LogFilePerm)
	if err != nil {
		logging.Error(err)
		return err
	}
	return f.Close()
}

// Run executes the schedule in order, appending to the log. A repetition boundary line is
// written to the log each time the repetition changes. Runs that fail are recorded and
// the schedule continues. Run stops early if ctx is cancelled or the log cannot be written,
// returning the statuses of the runs done so far together with the error.
func (d *Driver) Run(ctx context.Context, schedule []gento.ScheduledRun) ([]types.RunStatus, error) {
	f, err := os.OpenFile(d.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, config.LogFilePerm)
	if err != nil {
		logging.Error(err)
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Error(err)
		}
	}()

	statuses := make([]types.RunStatus, 0, len(schedule))
	avg := utils.NewMovingAvg(durationWindow)
	prevRep := -1
	for i, nxt := range schedule {
		if err = ctx.Err(); err != nil {
			logging.Warning("Stopping sweep: ", err)
			return statuses, err
		}
		if nxt.Repetition != prevRep {
			if _, err = fmt.Fprintf(f, parse.BoundaryFormat+"\n", nxt.Repetition); err != nil {
				logging.Error(err)
				return statuses, err
			}
			prevRep = nxt.Repetition
			d.metrics.setRepetition(nxt.Repetition)
			logging.Info("Starting repetition ", nxt.Repetition)
		}

		status, err := d.runOne(ctx, f, nxt)
		statuses = append(statuses, status)
		if err != nil {
			return statuses, err
		}
		remaining := avg.AddElement(status.Duration) * time.Duration(len(schedule)-i-1)
		logging.Debugf("Done %v of %v runs, about %v remaining", i+1, len(schedule), remaining.Round(time.Second))
	}
	return statuses, nil
}

func (d *Driver) runOne(ctx context.Context, f *os.File, run gento.ScheduledRun) (types.RunStatus, error) {
	args := d.template.Build(run.Configuration)
	entry := logging.WithFields(logging.Fields{
		"repetition": run.Repetition,
		"position":   run.Position,
		"config":     run.Configuration.String(),
		"id":         run.Configuration.ID(),
	})
	entry.Debug("Running command: ", args)

	start := time.Now()
	exitCode, err := d.executor.Execute(ctx, args, f)
	status := types.RunStatus{
		Repetition:    run.Repetition,
		Position:      run.Position,
		Configuration: run.Configuration,
		ExitCode:      exitCode,
		Duration:      time.Since(start),
	}
	if err != nil {
		status.Err = err.Error()
	}
	d.metrics.observeRun(status.Failed(), status.Duration.Seconds())

	switch {
	case err != nil && ctx.Err() != nil:
		entry.Warning("Run interrupted")
		return status, ctx.Err()
	case status.Failed():
		entry.WithField("exitCode", exitCode).WithError(err).Warning("Run failed")
		// close the run in case the program died before shutting down
		if _, err = fmt.Fprintln(f, parse.TerminationLine); err != nil {
			logging.Error(err)
			return status, err
		}
	default:
		entry.WithField("duration", status.Duration).Info("Run done")
	}
	return status, nil
}

// FailedRuns returns the statuses of the runs that did not exit cleanly.
func FailedRuns(statuses []types.RunStatus) (ret []types.RunStatus) {
	for _, nxt := range statuses {
		if nxt.Failed() {
			ret = append(ret, nxt)
		}
	}
	return
}

// CheckStatuses returns an error wrapping types.ErrRunFailed if any of the runs failed.
func CheckStatuses(statuses []types.RunStatus) error {
	failed := FailedRuns(statuses)
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v of %v runs, first %v", types.ErrRunFailed, len(failed), len(statuses),
		failed[0].Configuration)
}
