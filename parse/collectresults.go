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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tcrain/synodbench/config"
	"github.com/tcrain/synodbench/consensus/logging"
	"github.com/tcrain/synodbench/consensus/types"
)

const (
	LatencyTableFileName = "latency_table.tex"
	latencyStatName      = "MeanLatency"
	latencyVaryField     = "tle"
)

// GraphFileName returns the name of the plot data file of a series of configurations that
// only differ by their election timeout.
func GraphFileName(series string) string {
	return fmt.Sprintf("graph_%v_%v_%v.txt", latencyStatName, latencyVaryField, series)
}

// MakeOutput writes the aggregated rows to folderPath as a latex document and as one plot data
// file per series (the latency as a function of the election timeout).
// It returns the names of the plot data files.
func MakeOutput(folderPath string, rows []types.AggregatedRow) (fileNames []string, err error) {
	if err = os.MkdirAll(folderPath, os.ModePerm); err != nil {
		logging.Error(err)
		return nil, err
	}

	var table bytes.Buffer
	if err = WriteLatencyDocument(&table, rows, config.TableRoundTo); err != nil {
		logging.Error(err)
		return nil, err
	}
	if err = os.WriteFile(filepath.Join(folderPath, LatencyTableFileName), table.Bytes(), 0644); err != nil {
		logging.Error(err)
		return nil, err
	}

	series := make(map[string][]types.AggregatedRow)
	var order []string
	for _, nxt := range rows {
		name := nxt.SeriesName()
		if _, ok := series[name]; !ok {
			order = append(order, name)
		}
		series[name] = append(series[name], nxt)
	}
	for _, name := range order {
		var fileName string
		if fileName, err = writeSeriesFile(folderPath, name, series[name]); err != nil {
			logging.Error(err)
			return nil, err
		}
		fileNames = append(fileNames, fileName)
	}
	return fileNames, nil
}

// writeSeriesFile writes one line per election timeout, configurations that never decided
// are left out.
func writeSeriesFile(folderPath, series string, rows []types.AggregatedRow) (string, error) {
	rows = append([]types.AggregatedRow(nil), rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TLE < rows[j].TLE
	})

	var out bytes.Buffer
	out.WriteString(fmt.Sprintf("# %v\tMin%v\t%v\tMax%v\n", series, latencyStatName, latencyStatName,
		latencyStatName))
	for _, nxt := range rows {
		if nxt.NoDecision() {
			continue
		}
		out.WriteString(fmt.Sprintf("%v\t%v\t%v\t%v\t\n", nxt.TLE, nxt.MinLatency, nxt.MeanLatency,
			nxt.MaxLatency))
	}
	fileName := filepath.Join(folderPath, GraphFileName(series))
	return fileName, os.WriteFile(fileName, out.Bytes(), 0644)
}
