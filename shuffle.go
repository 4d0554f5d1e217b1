// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gencircle

import (
	"github.com/golang/geo/r2"
)

// Shuffler is a source of uniform random permutations.
// *math/rand.Rand and *math/rand/v2.Rand implement it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffle permutes points in place. Every permutation is equally likely
// provided rnd is uniform.
func Shuffle(points []r2.Point, rnd Shuffler) {
	rnd.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}
