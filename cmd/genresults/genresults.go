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
This package parses the log of a sweep and writes the averaged latencies as json, a latex
table and text files that can be used to generate graphs.
*/
package main

import (
	"github.com/alecthomas/kong"

	"github.com/tcrain/synodbench/config"
	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/utils"
	"github.com/tcrain/synodbench/consensus/types"
	"github.com/tcrain/synodbench/gento"
	"github.com/tcrain/synodbench/parse"
)

type CLI struct {
	Log      string `help:"Log file to parse, overrides the config file." type:"path"`
	Out      string `help:"Folder the results are written to, overrides the config file." type:"path"`
	Policy   string `help:"Latency kept for each run (min or first), overrides the config file."`
	Sweep    string `help:"Sweep file written by gensweep, the configurations of the log are checked against it." type:"path"`
	LogLevel string `help:"Log level." default:"info" enum:"error,warning,info,debug"`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Description("Average the decision latencies of a sweep log."))
	utils.PanicNonNil(logging.SetLevel(cli.LogLevel))

	sc, _, err := config.LoadSweepConfigOrDefault("sweep")
	if err != nil {
		logging.WithError(err).Fatal("could not load config")
	}
	if cli.Log != "" {
		sc.LogFile = cli.Log
	}
	if cli.Out != "" {
		sc.OutputDir = cli.Out
	}
	if cli.Policy != "" {
		sc.LatencyPolicy = cli.Policy
	}
	policy, err := parse.ParseLatencyPolicy(sc.LatencyPolicy)
	if err != nil {
		logging.WithError(err).Fatal("invalid latency policy")
	}

	var expected []types.Configuration
	if cli.Sweep != "" {
		sf, err := gento.LoadSweepFile(cli.Sweep)
		if err != nil {
			logging.WithError(err).Fatal("could not load sweep")
		}
		expected = sf.Configurations
	}

	rows, err := parse.GenResults(sc.LogFile, sc.OutputDir, policy, expected)
	if err != nil {
		logging.WithError(err).Fatal("could not generate results")
	}
	logging.Printf("Wrote %v rows to %v", len(rows), sc.OutputDir)
}
