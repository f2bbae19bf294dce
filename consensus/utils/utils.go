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

/*
Random helper functions.
*/
package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func PanicNonNil(err error) {
	if err != nil {
		panic(err)
	}
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Exp returns x to the power y, y must not be negative.
func Exp[T constraints.Integer](x, y T) (ret T) {
	ret = 1
	for i := T(0); i < y; i++ {
		ret *= x
	}
	return
}

// RemoveDuplicatesSort returns a sorted copy of input without duplicates.
func RemoveDuplicatesSort[T constraints.Ordered](input []T) []T {
	ret := slices.Clone(input)
	slices.Sort(ret)
	return slices.Compact(ret)
}

// SortedKeys returns the keys of m in increasing order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	ret := maps.Keys(m)
	slices.Sort(ret)
	return ret
}
