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
General configuration settings, these are the defaults used when no sweep file is given.
*/
package config

import (
	"os"
)

type LogFmtLevel int

const (
	LOGERROR LogFmtLevel = iota
	LOGWARNING
	LOGINFO
	LOGDEBUG
)

var PrintMinimum bool // if true the tests wont print the parsed results

func init() {
	if os.Getenv("PRINT_MIN") != "" {
		PrintMinimum = true
	}
}

const (
	// for logging
	LoggingFmtLevel = LOGINFO

	// For the run driver
	DefaultLogFile     = "synod.log"   // shared log the external program appends to
	DefaultOutputDir   = "results"     // where the aggregated tables and plot data are written
	DefaultSweepFolder = "testconfigs" // where gensweep stores the enumerated sweep
	DefaultRepetitions = 5             // number of times the full sweep is run
	LogFilePerm        = 0644

	// For metrics, empty means the metrics server is not started
	DefaultMetricsAddress = ""

	// Latency policy used by the parser, "min" or "first"
	DefaultLatencyPolicy = "min"

	// Number of digits the latency table rounds to
	TableRoundTo = 2
)

// Default axes of the sweep. DefaultFValues is paired by index with DefaultNValues.
var (
	DefaultNValues     = []int{3, 10, 100}
	DefaultFValues     = []int{1, 4, 49}
	DefaultAlphaValues = []float64{0, 0.1, 1}
	DefaultTLEValues   = []int{500, 1000, 1500, 2000}
)

// DefaultCommand is the command used to start the consensus program, the placeholders
// {N}, {f}, {alpha} and {tle} are replaced by the values of the configuration being run.
var DefaultCommand = []string{"mvn", "exec:java", "-Dexec.mainClass=com.example.synod.Main",
	"-Dexec.args=-DN={N} -Df={f} -Dalpha={alpha} -Dtle={tle}"}
