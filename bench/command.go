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
Package bench runs the external consensus program once per scheduled configuration,
appending its output to a shared log that is parsed once the sweep is over.
*/
package bench

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/tcrain/synodbench/consensus/types"
)

// CommandTemplate is the command line used to start the consensus program.
// Every occurrence of {N}, {f}, {alpha} or {tle} in an argument is replaced by the value
// of the configuration being run.
type CommandTemplate []string

// Check returns an error if the template has no program to run.
func (ct CommandTemplate) Check() error {
	if len(ct) == 0 || strings.TrimSpace(ct[0]) == "" {
		return types.ErrEmptyCommand
	}
	return nil
}

// Build returns the arguments to run cfg with.
func (ct CommandTemplate) Build(cfg types.Configuration) []string {
	params := cfg.Params()
	pairs := make([]string, 0, len(types.AllParams)*2)
	for _, key := range types.AllParams {
		pairs = append(pairs, "{"+key+"}", params[key])
	}
	rep := strings.NewReplacer(pairs...)
	ret := make([]string, len(ct))
	for i, nxt := range ct {
		ret[i] = rep.Replace(nxt)
	}
	return ret
}

// Executor runs a program to completion.
type Executor interface {
	// Execute runs args[0] with the remaining arguments, writing stdout and stderr to out.
	// The exit code is returned, err is only non-nil if the program could not be run or
	// was killed.
	Execute(ctx context.Context, args []string, out io.Writer) (exitCode int, err error)
}

// ExecExecutor runs programs as child processes.
type ExecExecutor struct{}

func (ExecExecutor) Execute(ctx context.Context, args []string, out io.Writer) (int, error) {
	if len(args) == 0 {
		return -1, types.ErrEmptyCommand
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = out
	cmd.Stderr = out
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
