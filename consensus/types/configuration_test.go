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
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationString(t *testing.T) {
	c := Configuration{N: 3, F: 1, Alpha: 0.1, TLE: 500}
	assert.Equal(t, "N3,f1,alpha0.1,tle500", c.String())
	assert.Equal(t, "N3,f1,alpha0.1", c.SeriesName())
	assert.Equal(t, map[string]string{"N": "3", "f": "1", "alpha": "0.1", "tle": "500"}, c.Params())

	c.Alpha = 0
	assert.Equal(t, "N3,f1,alpha0,tle500", c.String())
	c.Alpha = 1
	assert.Equal(t, "1", c.Params()[ParamAlpha])
}

func TestConfigurationID(t *testing.T) {
	c1 := Configuration{N: 3, F: 1, Alpha: 0.1, TLE: 500}
	c2 := c1
	assert.Equal(t, c1.ID(), c2.ID())
	c2.TLE = 1000
	assert.NotEqual(t, c1.ID(), c2.ID())
}

func TestConfigurationCheckValid(t *testing.T) {
	assert.Nil(t, Configuration{N: 3, F: 1, Alpha: 0, TLE: 500}.CheckValid())
	assert.Nil(t, Configuration{N: 1, F: 0, Alpha: 1, TLE: 1}.CheckValid())

	for _, nxt := range []Configuration{
		{N: 0, F: 0, Alpha: 0, TLE: 500},
		{N: 3, F: 3, Alpha: 0, TLE: 500},
		{N: 3, F: -1, Alpha: 0, TLE: 500},
		{N: 3, F: 1, Alpha: 1.5, TLE: 500},
		{N: 3, F: 1, Alpha: -0.1, TLE: 500},
		{N: 3, F: 1, Alpha: 0, TLE: 0},
	} {
		err := nxt.CheckValid()
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), nxt.String())
	}
}

func TestConfigurationDiff(t *testing.T) {
	c1 := Configuration{N: 3, F: 1, Alpha: 0.1, TLE: 500}
	c2 := Configuration{N: 3, F: 1, Alpha: 1, TLE: 1000}
	assert.Equal(t, []string{"Alpha", "TLE"}, c1.FieldDiff(c2))
	assert.Equal(t, "Alpha: 0.1 -> 1, TLE: 500 -> 1000", c1.StringDiff(c2))
	assert.Empty(t, c1.FieldDiff(c1))
}

func TestRepetitionLatencies(t *testing.T) {
	r := Repetition{Index: 1, Runs: []RunRecord{
		{Position: 0, Latency: 10, Decided: true},
		{Position: 1},
		{Position: 2, Latency: 30, Decided: true},
	}}
	assert.Equal(t, []float64{10, 30}, r.Latencies())
}

func TestToFromDisk(t *testing.T) {
	dir := t.TempDir()
	cfgs := []Configuration{{N: 3, F: 1, Alpha: 0.1, TLE: 500}, {N: 10, F: 4, Alpha: 1, TLE: 2000}}
	require.Nil(t, ToDisk(filepath.Join(dir, "sub"), "cfgs.json", cfgs))

	var loaded []Configuration
	require.Nil(t, FromDisk(filepath.Join(dir, "sub", "cfgs.json"), &loaded))
	assert.Equal(t, cfgs, loaded)
}
