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
	"path/filepath"

	"github.com/tcrain/synodbench/consensus/types"
)

const (
	ResultsFileName = "results.json"
	StatusFileName  = "runs.json"
)

// ResultFile is what is stored on disk after parsing a log.
type ResultFile struct {
	LatencyPolicy  string
	LogFile        string
	Rows           []types.AggregatedRow
	Unrecognized   int
	IncompleteRuns int
}

// WriteResults stores the results as json in folderPath.
func WriteResults(folderPath string, res ResultFile) error {
	return types.ToDisk(folderPath, ResultsFileName, res)
}

// LoadResults loads the results stored by WriteResults in folderPath.
func LoadResults(folderPath string) (ret ResultFile, err error) {
	err = types.FromDisk(filepath.Join(folderPath, ResultsFileName), &ret)
	return
}

// WriteRunStatuses stores the exit status of each run as json in folderPath.
func WriteRunStatuses(folderPath string, statuses []types.RunStatus) error {
	return types.ToDisk(folderPath, StatusFileName, statuses)
}

// LoadRunStatuses loads the statuses stored by WriteRunStatuses in folderPath.
func LoadRunStatuses(folderPath string) (ret []types.RunStatus, err error) {
	err = types.FromDisk(filepath.Join(folderPath, StatusFileName), &ret)
	return
}
