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
	"fmt"
	"io"

	"github.com/tcrain/synodbench/consensus/types"
)

func WriteLatexHeader(writer io.Writer) (n int, err error) {
	return writer.Write([]byte("\\documentclass{article}\n" +
		"\\usepackage[landscape]{geometry}\n" +
		"\\usepackage{multirow}\n" +
		"\\usepackage{graphicx}\n" +
		"\\begin{document}\n\n"))
}

func WriteLatexFooter(writer io.Writer) (n int, err error) {
	return writer.Write([]byte("\n\\end{document}\n"))
}

// WriteLatencyDocument writes a latex document with one latency table per system size.
// The rows of a table keep the order of the sweep.
func WriteLatencyDocument(writer io.Writer, rows []types.AggregatedRow, roundTo int) error {
	if _, err := WriteLatexHeader(writer); err != nil {
		return err
	}
	var order []string
	bySize := make(map[string][]types.AggregatedRow)
	for _, nxt := range rows {
		name := fmt.Sprintf("latency-N%d-f%d", nxt.N, nxt.F)
		if _, ok := bySize[name]; !ok {
			order = append(order, name)
		}
		bySize[name] = append(bySize[name], nxt)
	}
	for _, name := range order {
		if err := WriteLatencyTable(writer, bySize[name], name, roundTo); err != nil {
			return err
		}
	}
	_, err := WriteLatexFooter(writer)
	return err
}
