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
	"fmt"

	"github.com/tcrain/synodbench/config"
	"github.com/tcrain/synodbench/consensus/types"
)

// Axes are the lists of values swept over. FValues[i] is the fault bound used with NValues[i].
type Axes struct {
	NValues     []int
	FValues     []int
	AlphaValues []float64
	TLEValues   []int
}

// AxesFromConfig returns the axes of a sweep config.
func AxesFromConfig(sc config.SweepConfig) Axes {
	return Axes{
		NValues:     sc.NValues,
		FValues:     sc.FValues,
		AlphaValues: sc.AlphaValues,
		TLEValues:   sc.TLEValues,
	}
}

// Check returns an error if the f values can not be paired with the n values.
func (a Axes) Check() error {
	if len(a.NValues) != len(a.FValues) {
		return fmt.Errorf("%w: %v n values, %v f values", types.ErrAxisMismatch,
			len(a.NValues), len(a.FValues))
	}
	return nil
}

// Size returns the number of configurations in the sweep.
func (a Axes) Size() int {
	return len(a.NValues) * len(a.AlphaValues) * len(a.TLEValues)
}

// ConfigIterator is an interface for iterating configurations.
type ConfigIterator interface {
	// Next returns the next configuration, ok is false once all have been returned.
	Next() (itm types.Configuration, ok bool)
}

// ConfigIter iterates the sweep with the N index outermost, then alpha, then tle.
// It implements ConfigIterator.
type ConfigIter struct {
	axes     Axes
	nIdx     int
	alphaIdx int
	tleIdx   int
}

// NewConfigIter returns an iterator over the sweep described by axes.
func NewConfigIter(axes Axes) (*ConfigIter, error) {
	if err := axes.Check(); err != nil {
		return nil, err
	}
	return &ConfigIter{axes: axes}, nil
}

// Next returns the next configuration, ok is false once all have been returned.
func (ci *ConfigIter) Next() (itm types.Configuration, ok bool) {
	if ci.axes.Size() == 0 || ci.nIdx >= len(ci.axes.NValues) {
		return
	}
	itm = types.Configuration{
		N:     ci.axes.NValues[ci.nIdx],
		F:     ci.axes.FValues[ci.nIdx],
		Alpha: ci.axes.AlphaValues[ci.alphaIdx],
		TLE:   ci.axes.TLEValues[ci.tleIdx],
	}
	ci.tleIdx++
	if ci.tleIdx == len(ci.axes.TLEValues) {
		ci.tleIdx = 0
		ci.alphaIdx++
		if ci.alphaIdx == len(ci.axes.AlphaValues) {
			ci.alphaIdx = 0
			ci.nIdx++
		}
	}
	return itm, true
}

// GenSweep returns the configurations of the sweep in the order they are run.
func GenSweep(axes Axes) ([]types.Configuration, error) {
	iter, err := NewConfigIter(axes)
	if err != nil {
		return nil, err
	}
	ret := make([]types.Configuration, 0, axes.Size())
	for nxt, ok := iter.Next(); ok; nxt, ok = iter.Next() {
		ret = append(ret, nxt)
	}
	return ret, nil
}

// ScheduledRun is a single execution of the consensus program.
type ScheduledRun struct {
	Repetition int
	Position   int
	types.Configuration
}

// GenSchedule returns the runs of repetitions 0 to reps-1, each repetition runs the full sweep
// in the same order.
func GenSchedule(axes Axes, reps int) ([]ScheduledRun, error) {
	sweep, err := GenSweep(axes)
	if err != nil {
		return nil, err
	}
	var ret []ScheduledRun
	for j := 0; j < reps; j++ {
		for i, nxt := range sweep {
			ret = append(ret, ScheduledRun{
				Repetition:    j,
				Position:      i,
				Configuration: nxt,
			})
		}
	}
	return ret, nil
}
