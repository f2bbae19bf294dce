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
This package runs every configuration of a sweep on the local machine, repeating the sweep,
then parses the log and writes the averaged latencies.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tcrain/synodbench/bench"
	"github.com/tcrain/synodbench/config"
	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/utils"
	"github.com/tcrain/synodbench/gento"
	"github.com/tcrain/synodbench/parse"
)

type CLI struct {
	Sweep     string `help:"Sweep file written by gensweep, the config file axes are used if empty." type:"path"`
	Check     bool   `help:"Only check the sweep and the command are valid then exit."`
	NoResults bool   `help:"Do not parse the log once the sweep is done."`
	LogLevel  string `help:"Log level." default:"info" enum:"error,warning,info,debug"`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Description("Run a sweep of the synod consensus program."))
	utils.PanicNonNil(logging.SetLevel(cli.LogLevel))

	sc, found, err := config.LoadSweepConfigOrDefault("sweep")
	if err != nil {
		logging.WithError(err).Fatal("could not load config")
	}
	if !found {
		logging.Info("No config file found, using the default sweep")
	}
	policy, err := parse.ParseLatencyPolicy(sc.LatencyPolicy)
	if err != nil {
		logging.WithError(err).Fatal("invalid latency policy")
	}

	axes, reps := gento.AxesFromConfig(sc), sc.Repetitions
	if cli.Sweep != "" {
		logging.Info("Loading sweep from file: ", cli.Sweep)
		sf, err := gento.LoadSweepFile(cli.Sweep)
		if err != nil {
			logging.WithError(err).Fatal("could not load sweep")
		}
		axes, reps = sf.Axes, sf.Repetitions
	}
	schedule, err := gento.GenSchedule(axes, reps)
	if err != nil {
		logging.WithError(err).Fatal("invalid sweep")
	}
	sweep, err := gento.GenSweep(axes)
	if err != nil {
		logging.WithError(err).Fatal("invalid sweep")
	}

	reg := prometheus.NewRegistry()
	metrics, err := bench.NewMetrics(reg)
	if err != nil {
		logging.WithError(err).Fatal("could not register metrics")
	}
	d, err := bench.NewDriver(sc.LogFile, bench.CommandTemplate(sc.Command), bench.ExecExecutor{}, metrics)
	if err != nil {
		logging.WithError(err).Fatal("invalid command")
	}
	logging.WithFields(logging.Fields{
		"configurations": len(sweep),
		"repetitions":    reps,
		"log":            sc.LogFile,
	}).Info("Loaded sweep")
	if cli.Check {
		return
	}

	if sc.MetricsAddress != "" {
		server := bench.ServeMetrics(sc.MetricsAddress, reg)
		defer server.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = d.ResetLog(); err != nil {
		logging.WithError(err).Fatal("could not reset the log")
	}
	statuses, runErr := d.Run(ctx, schedule)
	if err = parse.WriteRunStatuses(sc.OutputDir, statuses); err != nil {
		logging.WithError(err).Error("could not write run statuses")
	}
	if runErr != nil {
		logging.WithError(runErr).Error("sweep stopped after ", len(statuses), " runs")
		return
	}
	if err = bench.CheckStatuses(statuses); err != nil {
		logging.WithError(err).Warning("some runs failed")
	}
	if cli.NoResults {
		return
	}

	rows, err := parse.GenResults(d.LogPath(), sc.OutputDir, policy, sweep)
	if err != nil {
		logging.WithError(err).Error("could not generate results")
		return
	}
	logging.Printf("Wrote %v rows to %v", len(rows), filepath.Clean(sc.OutputDir))
}
