// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gencircle

import (
	"github.com/golang/geo/r2"
)

// TourLength returns the length of the closed path that visits points in
// sequence order and returns to the first one. It is 0 for fewer than two
// points.
func TourLength(points []r2.Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	var length float64
	for i, p := range points {
		length += points[(i+1)%n].Sub(p).Norm()
	}
	return length
}
