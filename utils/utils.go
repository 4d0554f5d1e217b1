// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides random sources and random planar point sets.

package utils

import (
	"math/rand/v2"

	"github.com/golang/geo/r2"
)

// DefaultArea is the side length of the square GenerateRandomPoints samples
// from when area is not positive.
const DefaultArea = 500.0

// NewRand returns a generator whose output is fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	//nolint:gosec
	return rand.New(rand.NewPCG(seed, seed))
}

// NewEntropyRand returns a generator seeded from system entropy.
func NewEntropyRand() *rand.Rand {
	//nolint:gosec
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// GenerateRandomPoints generates cnt points uniformly distributed in the
// square [-area/2, area/2) x [-area/2, area/2).
func GenerateRandomPoints(cnt int, area float64, random *rand.Rand) []r2.Point {
	if area <= 0 {
		area = DefaultArea
	}
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{
			X: (random.Float64() - 0.5) * area,
			Y: (random.Float64() - 0.5) * area,
		}
	}

	return points
}
