// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package gencircle generates planar points lying on a circle centered at the
// origin, shuffles them and encodes them as text.
package gencircle

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

const (
	// DefaultRadius is the circle radius used when WithRadius is not given.
	DefaultRadius = 250.0

	// MaxCount is the largest count accepted by any spacing.
	MaxCount = 1 << 20

	fullTurn = 360
)

var (
	ErrInvalidCount   = errors.New("gencircle: count must be positive")
	ErrCountTooLarge  = errors.New("gencircle: count too large")
	ErrInvalidRadius  = errors.New("gencircle: radius must be positive")
	ErrInvalidSpacing = errors.New("gencircle: unknown spacing")
)

// Generate returns the points of a circle in generation order, starting at
// angle 0 (the positive y axis) and moving clockwise. Each point is
// (r*sin(θ), r*cos(θ)).
func Generate(count int, setters ...Option) ([]r2.Point, error) {
	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	switch opts.Spacing {
	case SpacingTruncated:
		if count > fullTurn {
			return nil, fmt.Errorf("%w: got %d, maximum %d for truncated spacing", ErrCountTooLarge,
				count, fullTurn)
		}
		step := fullTurn / count
		points := make([]r2.Point, 0, NumPoints(count))
		for deg := 0; deg < fullTurn; deg += step {
			points = append(points, pointAt(s1.Angle(deg)*s1.Degree, opts.Radius))
		}
		return points, nil
	case SpacingEven:
		if count > MaxCount {
			return nil, fmt.Errorf("%w: got %d, maximum %d", ErrCountTooLarge, count, MaxCount)
		}
		points := make([]r2.Point, count)
		for i := range count {
			deg := float64(fullTurn) * float64(i) / float64(count)
			points[i] = pointAt(s1.Angle(deg)*s1.Degree, opts.Radius)
		}
		return points, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidSpacing, opts.Spacing)
}

// NumPoints returns how many points Generate produces with truncated spacing,
// ceil(360 / (360/count)). It returns 0 for counts Generate rejects.
func NumPoints(count int) int {
	if count <= 0 || count > fullTurn {
		return 0
	}
	step := fullTurn / count
	return (fullTurn + step - 1) / step
}

func pointAt(a s1.Angle, r float64) r2.Point {
	rad := a.Radians()
	return r2.Point{X: math.Sin(rad) * r, Y: math.Cos(rad) * r}
}
