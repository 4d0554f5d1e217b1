// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gencircle

import (
	"fmt"
)

// Spacing selects how angles are distributed around the circle.
type Spacing int

const (
	// SpacingTruncated advances the angle by 360/count degrees using integer
	// division, so the number of generated points may differ from count.
	// Counts above 360 are rejected.
	SpacingTruncated Spacing = iota
	// SpacingEven places exactly count points at 360*i/count degrees.
	SpacingEven
)

func (s Spacing) String() string {
	switch s {
	case SpacingTruncated:
		return "truncated"
	case SpacingEven:
		return "even"
	}
	return fmt.Sprintf("Spacing(%d)", int(s))
}

// Options configures Generate.
type Options struct {
	Radius  float64
	Spacing Spacing
}

// Option sets a field of Options. It returns an error if the value is invalid.
type Option func(*Options) error

// WithRadius sets the circle radius. The radius must be positive.
func WithRadius(r float64) Option {
	return func(o *Options) error {
		if !(r > 0) {
			return fmt.Errorf("%w: %v", ErrInvalidRadius, r)
		}
		o.Radius = r
		return nil
	}
}

// WithSpacing sets the angle distribution.
func WithSpacing(s Spacing) Option {
	return func(o *Options) error {
		if s != SpacingTruncated && s != SpacingEven {
			return fmt.Errorf("%w: %v", ErrInvalidSpacing, s)
		}
		o.Spacing = s
		return nil
	}
}

func defaultOptions() Options {
	return Options{
		Radius:  DefaultRadius,
		Spacing: SpacingTruncated,
	}
}
