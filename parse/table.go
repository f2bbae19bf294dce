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
	"math"
	"strings"

	"github.com/tcrain/synodbench/consensus/types"
	"github.com/tcrain/synodbench/consensus/utils"
)

// Header is a column of a PrintTable, if minMax is true the column is split in min, avg and max.
type Header struct {
	name   string
	minMax bool
}

func NewHeader(name string, minMax bool) Header {
	return Header{
		name:   name,
		minMax: minMax,
	}
}

// PrintTable writes a latex table row by row.
type PrintTable struct {
	headers []Header
	writer  io.Writer
	n       int
}

// InitTable writes the table header, n is the number of bytes written.
func InitTable(leftHeader string, headers []Header, writer io.Writer) (ret *PrintTable, n int, err error) {
	ret = &PrintTable{
		headers: headers,
		writer:  writer,
	}
	var cols, names, sub strings.Builder
	var hasMinMax bool
	for i, nxt := range headers {
		switch nxt.minMax {
		case true:
			hasMinMax = true
			cols.WriteString(" | c  c  c")
			var sep string
			if i < len(headers)-1 {
				sep = "|"
			}
			names.WriteString(fmt.Sprintf(" & \\multicolumn{3}{c%v}{%v}", sep, nxt.name))
			sub.WriteString(" & min & avg & max")
		case false:
			cols.WriteString(" | c")
			names.WriteString(fmt.Sprintf(" & %v", nxt.name))
			sub.WriteString(" &")
		}
	}
	str := fmt.Sprintf("\\begin{table}\n\\centering\n\\begin{tabular}{ l |%v }\n%v%v \\\\\n",
		cols.String(), leftHeader, names.String())
	if hasMinMax {
		str += sub.String() + " \\\\\n"
	}
	err = ret.writeStr(str + "\\hline\n")
	return ret, ret.n, err
}

func (pt *PrintTable) writeStr(str string) error {
	n, err := pt.writer.Write([]byte(str))
	pt.n += n
	return err
}

func roundFloat(nxt interface{}, roundTo int) interface{} {
	round := float64(utils.Exp(10, roundTo))
	switch v := nxt.(type) {
	case float32:
		return math.Round(float64(v)*round) / round
	case float64:
		return math.Round(v*round) / round
	}
	return nxt
}

// AddRow writes a row, values has one {min, avg, max} item per header, only avg is printed
// for headers without minMax.
func (pt *PrintTable) AddRow(title interface{}, values [][3]interface{}, roundTo int) (n int, err error) {
	pt.n = 0
	if len(values) != len(pt.headers) {
		panic("must have same number of values as headers")
	}
	var str strings.Builder
	str.WriteString(fmt.Sprint(title))
	for i, nxt := range values {
		for j := range nxt {
			nxt[j] = roundFloat(nxt[j], roundTo)
		}
		switch pt.headers[i].minMax {
		case true:
			str.WriteString(fmt.Sprintf(" & %v & %v & %v", nxt[0], nxt[1], nxt[2]))
		case false:
			str.WriteString(fmt.Sprintf(" & %v", nxt[1]))
		}
	}
	str.WriteString(" \\\\\n")
	err = pt.writeStr(str.String())
	return pt.n, err
}

// Done closes the table.
func (pt *PrintTable) Done(caption string) (n int, err error) {
	pt.n = 0
	err = pt.writeStr(fmt.Sprintf("\\end{tabular}\n"+
		"\\caption{%v}\\label{tab:%v}\n"+
		"\\end{table}\n\n",
		caption, caption))
	return pt.n, err
}

var latencyHeaders = []Header{
	NewHeader("Latency (ms)", true),
	NewHeader("Decided", false),
	NewHeader("Undecided", false),
}

// WriteLatencyTable writes the aggregated rows as a latex table with one row per configuration.
func WriteLatencyTable(writer io.Writer, rows []types.AggregatedRow, caption string, roundTo int) error {
	tab, _, err := InitTable("Configuration", latencyHeaders, writer)
	if err != nil {
		return err
	}
	for _, nxt := range rows {
		lat := [3]interface{}{"-", "-", "-"}
		if !nxt.NoDecision() {
			lat = [3]interface{}{nxt.MinLatency, nxt.MeanLatency, nxt.MaxLatency}
		}
		if _, err = tab.AddRow(nxt.Configuration.String(), [][3]interface{}{
			lat,
			{nil, nxt.Samples, nil},
			{nil, nxt.Undecided, nil},
		}, roundTo); err != nil {
			return err
		}
	}
	_, err = tab.Done(caption)
	return err
}
