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

package gento

import (
	"path/filepath"

	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/types"
	"github.com/tcrain/synodbench/consensus/utils"
)

const SweepFileName = "sweep.json"

// SweepFile is what is stored on disk for a generated sweep.
type SweepFile struct {
	Axes
	Repetitions    int
	Configurations []types.Configuration
}

// GenSweepToDisk enumerates the sweep and stores it in folderPath.
// It returns the path of the file written.
func GenSweepToDisk(folderPath string, axes Axes, reps int) (string, error) {
	sweep, err := GenSweep(axes)
	if err != nil {
		logging.Error(err)
		return "", err
	}
	if len(utils.RemoveDuplicatesSort(axes.AlphaValues)) != len(axes.AlphaValues) ||
		len(utils.RemoveDuplicatesSort(axes.TLEValues)) != len(axes.TLEValues) {
		logging.Warning("sweep has repeated alpha or tle values, the same configuration will be run more than once")
	}
	var prv types.Configuration
	for i, nxt := range sweep {
		if err := nxt.CheckValid(); err != nil {
			logging.Error(err)
			return "", err
		}
		if i > 0 {
			logging.Debugf("Config change: %v", prv.StringDiff(nxt))
		}
		prv = nxt
	}
	logging.Info("Gen sweep folder ", folderPath)
	if err := types.ToDisk(folderPath, SweepFileName, SweepFile{
		Axes:           axes,
		Repetitions:    reps,
		Configurations: sweep,
	}); err != nil {
		logging.Error(err)
		return "", err
	}
	return filepath.Join(folderPath, SweepFileName), nil
}

// LoadSweepFile loads a sweep stored by GenSweepToDisk.
func LoadSweepFile(filePath string) (ret SweepFile, err error) {
	err = types.FromDisk(filePath, &ret)
	return
}
