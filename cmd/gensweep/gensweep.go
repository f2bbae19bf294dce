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
This package writes the configurations of a sweep to disk, in the order they will be run.
*/
package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/tcrain/synodbench/config"
	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/utils"
	"github.com/tcrain/synodbench/gento"
)

type CLI struct {
	Folder      string `help:"Folder the sweep file is written to." default:"${sweepFolder}"`
	Name        string `help:"Name of the sweep, the file is written to <folder>/<name>." default:"synod"`
	Repetitions int    `help:"Number of repetitions, overrides the config file." default:"0"`
	LogLevel    string `help:"Log level." default:"info" enum:"error,warning,info,debug"`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Description("Enumerate the configurations of a sweep."),
		kong.Vars{"sweepFolder": config.DefaultSweepFolder})
	utils.PanicNonNil(logging.SetLevel(cli.LogLevel))

	sc, found, err := config.LoadSweepConfigOrDefault("sweep")
	if err != nil {
		logging.WithError(err).Fatal("could not load config")
	}
	if !found {
		logging.Info("No config file found, using the default sweep")
	}
	if cli.Repetitions > 0 {
		sc.Repetitions = cli.Repetitions
	}

	path, err := gento.GenSweepToDisk(filepath.Join(cli.Folder, cli.Name), gento.AxesFromConfig(sc), sc.Repetitions)
	if err != nil {
		logging.WithError(err).Fatal("could not generate sweep")
	}
	logging.Print("Wrote sweep to ", path)
}
