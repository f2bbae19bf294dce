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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	prefix := "[INFO] [10/19/2026 12:00:00.123] [system-akka.actor.default-dispatcher-5] [akka://system/user] "

	assert.Equal(t, Line{Kind: Boundary, Repetition: 3}, ClassifyLine("Experiment number: 3"))
	assert.Equal(t, Line{Kind: Boundary, Repetition: 12}, ClassifyLine(prefix+"Experiment number:12"))

	assert.Equal(t, Line{Kind: Parameter, Key: "N", Value: "10"}, ClassifyLine(prefix+"System started with N=10"))
	assert.Equal(t, Line{Kind: Parameter, Key: "tle", Value: "500"}, ClassifyLine(prefix+"System started with tle=500"))
	assert.Equal(t, Line{Kind: Parameter, Key: "f", Value: "4"}, ClassifyLine("System started with f=4"))
	assert.Equal(t, Line{Kind: Parameter, Key: "alpha", Value: "0.1"}, ClassifyLine("System started with alpha=0.1"))

	assert.Equal(t, Line{Kind: Latency, Latency: 50}, ClassifyLine(prefix+"time: 50"))
	assert.Equal(t, Line{Kind: Latency, Latency: 12.5}, ClassifyLine("p3 decided, time: 12.5"))
	assert.Equal(t, Line{Kind: Latency, Latency: 7}, ClassifyLine("time:7"))

	assert.Equal(t, Line{Kind: Termination}, ClassifyLine(prefix+"System is shutting down..."))
}

func TestClassifyLineUnrecognized(t *testing.T) {
	for _, nxt := range []string{
		"",
		"YOoooooooooooooooooooo",
		"p1 - propose(1)",
		"System started with N=abc",
		"System started with alpha=x",
		"System started with k=5",
		"runtime: 50",
		"time: fast",
		"Experiment number: x",
	} {
		l := ClassifyLine(nxt)
		assert.Equal(t, Unrecognized, l.Kind, nxt)
	}
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "Boundary", Boundary.String())
	assert.Equal(t, "Termination", Termination.String())
	assert.Equal(t, "LineKind9", LineKind(9).String())
}
