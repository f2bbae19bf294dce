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

package types

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Keys used by the consensus program when announcing its parameters.
const (
	ParamN     = "N"
	ParamTLE   = "tle"
	ParamF     = "f"
	ParamAlpha = "alpha"
)

// AllParams are the parameters that must be announced for each run.
var AllParams = []string{ParamN, ParamTLE, ParamF, ParamAlpha}

// Configuration is a single point of the parameter sweep.
type Configuration struct {
	N     int     // number of processes
	F     int     // number of processes that may crash
	Alpha float64 // probability a faulty process crashes
	TLE   int     // leader election timeout in milliseconds
}

// FormatAlpha prints alpha without trailing zeros, the way it is passed to the consensus program.
func FormatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', -1, 64)
}

func (c Configuration) String() string {
	return fmt.Sprintf("N%d,f%d,alpha%v,tle%d", c.N, c.F, FormatAlpha(c.Alpha), c.TLE)
}

// SeriesName identifies the configuration without the election timeout.
func (c Configuration) SeriesName() string {
	return fmt.Sprintf("N%d,f%d,alpha%v", c.N, c.F, FormatAlpha(c.Alpha))
}

// Params returns the values of the configuration indexed by the keys of AllParams.
func (c Configuration) Params() map[string]string {
	return map[string]string{
		ParamN:     strconv.Itoa(c.N),
		ParamTLE:   strconv.Itoa(c.TLE),
		ParamF:     strconv.Itoa(c.F),
		ParamAlpha: FormatAlpha(c.Alpha),
	}
}

// ID returns a stable identifier computed from the values of the configuration.
func (c Configuration) ID() uint64 {
	h := blake2b.Sum256([]byte(c.String()))
	return binary.LittleEndian.Uint64(h[:8])
}

// CheckValid returns an error if the configuration can not be run.
func (c Configuration) CheckValid() error {
	switch {
	case c.N < 1:
		return fmt.Errorf("%w: N must be at least 1, got %v", ErrInvalidConfiguration, c.N)
	case c.F < 0 || c.F >= c.N:
		return fmt.Errorf("%w: f must be in [0, N), got %v", ErrInvalidConfiguration, c.F)
	case c.Alpha < 0 || c.Alpha > 1:
		return fmt.Errorf("%w: alpha must be in [0, 1], got %v", ErrInvalidConfiguration, c.Alpha)
	case c.TLE <= 0:
		return fmt.Errorf("%w: tle must be positive, got %v", ErrInvalidConfiguration, c.TLE)
	}
	return nil
}

// FieldDiff returns the names of the fields that differ between the two configurations.
func (c Configuration) FieldDiff(other Configuration) (ret []string) {
	cv := reflect.ValueOf(c)
	ov := reflect.ValueOf(other)
	for i := 0; i < cv.NumField(); i++ {
		if cv.Field(i).Interface() != ov.Field(i).Interface() {
			ret = append(ret, cv.Type().Field(i).Name)
		}
	}
	return
}

// StringDiff prints the fields that differ between the two configurations.
func (c Configuration) StringDiff(other Configuration) string {
	cv := reflect.ValueOf(c)
	ov := reflect.ValueOf(other)
	var b strings.Builder
	for _, nxt := range c.FieldDiff(other) {
		b.WriteString(fmt.Sprintf("%v: %v -> %v, ", nxt, cv.FieldByName(nxt).Interface(),
			ov.FieldByName(nxt).Interface()))
	}
	return strings.TrimSuffix(b.String(), ", ")
}
