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

package utils

import "time"

// MovingAvg tracks the moving average of the last windowSize durations.
type MovingAvg struct {
	previousValues []time.Duration
	index          int
	count          int
	sum            time.Duration
	windowSize     int
}

// NewMovingAvg creates a object for tracking the moving average with the given window size.
func NewMovingAvg(windowSize int) *MovingAvg {
	if windowSize < 1 {
		panic("window size must be positive")
	}
	return &MovingAvg{
		previousValues: make([]time.Duration, windowSize),
		windowSize:     windowSize}
}

// AddElement adds a new element to the moving average, and returns the new moving average.
// Until windowSize elements have been added the average is over the elements added so far.
func (ma *MovingAvg) AddElement(v time.Duration) (newAvg time.Duration) {
	ma.sum -= ma.previousValues[ma.index]
	ma.previousValues[ma.index] = v
	ma.sum += v
	ma.index = (ma.index + 1) % ma.windowSize
	if ma.count < ma.windowSize {
		ma.count++
	}
	return ma.sum / time.Duration(ma.count)
}
