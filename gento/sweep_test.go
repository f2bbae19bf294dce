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
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcrain/synodbench/config"
	"github.com/tcrain/synodbench/consensus/types"
)

var testAxes = Axes{
	NValues:     []int{3, 10},
	FValues:     []int{1, 4},
	AlphaValues: []float64{0, 0.5},
	TLEValues:   []int{500, 1000, 1500},
}

func TestGenSweepOrder(t *testing.T) {
	sweep, err := GenSweep(testAxes)
	require.Nil(t, err)
	require.Equal(t, testAxes.Size(), len(sweep))
	assert.Equal(t, 12, len(sweep))

	assert.Equal(t, types.Configuration{N: 3, F: 1, Alpha: 0, TLE: 500}, sweep[0])
	assert.Equal(t, types.Configuration{N: 3, F: 1, Alpha: 0, TLE: 1000}, sweep[1])
	assert.Equal(t, types.Configuration{N: 3, F: 1, Alpha: 0.5, TLE: 500}, sweep[3])
	assert.Equal(t, types.Configuration{N: 10, F: 4, Alpha: 0, TLE: 500}, sweep[6])
	assert.Equal(t, types.Configuration{N: 10, F: 4, Alpha: 0.5, TLE: 1500}, sweep[11])

	// f always follows the index of N
	for _, nxt := range sweep {
		switch nxt.N {
		case 3:
			assert.Equal(t, 1, nxt.F)
		case 10:
			assert.Equal(t, 4, nxt.F)
		}
	}
}

func TestGenSweepEmpty(t *testing.T) {
	for _, nxt := range []Axes{
		{},
		{NValues: []int{3}, FValues: []int{1}, AlphaValues: []float64{0}},
		{NValues: []int{3}, FValues: []int{1}, TLEValues: []int{500}},
		{AlphaValues: []float64{0}, TLEValues: []int{500}},
	} {
		sweep, err := GenSweep(nxt)
		assert.Nil(t, err)
		assert.Empty(t, sweep)
	}
}

func TestGenSweepAxisMismatch(t *testing.T) {
	_, err := GenSweep(Axes{NValues: []int{3, 10}, FValues: []int{1},
		AlphaValues: []float64{0}, TLEValues: []int{500}})
	assert.True(t, errors.Is(err, types.ErrAxisMismatch))
}

func TestGenScheduleDeterministic(t *testing.T) {
	for _, reps := range []int{1, 2, 5} {
		sched, err := GenSchedule(testAxes, reps)
		require.Nil(t, err)
		require.Equal(t, reps*testAxes.Size(), len(sched))

		sweep, err := GenSweep(testAxes)
		require.Nil(t, err)
		for i, nxt := range sched {
			assert.Equal(t, i/len(sweep), nxt.Repetition)
			assert.Equal(t, i%len(sweep), nxt.Position)
			assert.Equal(t, sweep[nxt.Position], nxt.Configuration)
		}
	}
}

func TestDefaultSweepValid(t *testing.T) {
	sweep, err := GenSweep(AxesFromConfig(config.DefaultSweepConfig()))
	require.Nil(t, err)
	assert.Equal(t, 36, len(sweep))
	for _, nxt := range sweep {
		assert.Nil(t, nxt.CheckValid())
	}
}

func TestGenSweepToDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sweep")
	path, err := GenSweepToDisk(dir, testAxes, 3)
	require.Nil(t, err)

	sf, err := LoadSweepFile(path)
	require.Nil(t, err)
	assert.Equal(t, 3, sf.Repetitions)
	assert.Equal(t, testAxes, sf.Axes)
	sweep, _ := GenSweep(testAxes)
	assert.Equal(t, sweep, sf.Configurations)

	_, err = GenSweepToDisk(dir, Axes{NValues: []int{3}, FValues: []int{3},
		AlphaValues: []float64{0}, TLEValues: []int{500}}, 1)
	assert.True(t, errors.Is(err, types.ErrInvalidConfiguration))
}
