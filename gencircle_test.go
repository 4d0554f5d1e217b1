// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gencircle

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

// Options

func TestWithRadius(t *testing.T) {
	tests := []struct {
		name    string
		r       float64
		wantErr bool
	}{
		{"radius positive", 10, false},
		{"radius zero", 0, true},
		{"radius negative", -1, true},
		{"radius NaN", math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			err := WithRadius(tt.r)(&opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithRadius(%v) error = %v, wantErr %v", tt.r, err, tt.wantErr)
			}
			if err == nil && opts.Radius != tt.r {
				t.Errorf("WithRadius(%v) opts.Radius = %v, want %v", tt.r, opts.Radius, tt.r)
			}
			if err != nil && !errors.Is(err, ErrInvalidRadius) {
				t.Errorf("WithRadius(%v) error = %v, want ErrInvalidRadius", tt.r, err)
			}
		})
	}
}

func TestWithSpacing(t *testing.T) {
	tests := []struct {
		name    string
		s       Spacing
		wantErr bool
	}{
		{"truncated", SpacingTruncated, false},
		{"even", SpacingEven, false},
		{"unknown", Spacing(7), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			err := WithSpacing(tt.s)(&opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithSpacing(%v) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
			if err == nil && opts.Spacing != tt.s {
				t.Errorf("WithSpacing(%v) opts.Spacing = %v, want %v", tt.s, opts.Spacing, tt.s)
			}
		})
	}
}

// Generate

func TestGenerate_InvalidCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		setters []Option
		wantErr error
	}{
		{"zero", 0, nil, ErrInvalidCount},
		{"negative", -4, nil, ErrInvalidCount},
		{"negative even", -1, []Option{WithSpacing(SpacingEven)}, ErrInvalidCount},
		{"above full turn", 361, nil, ErrCountTooLarge},
		{"far above full turn", 100000, nil, ErrCountTooLarge},
		{"even above max", MaxCount + 1, []Option{WithSpacing(SpacingEven)}, ErrCountTooLarge},
		{"even max int", math.MaxInt, []Option{WithSpacing(SpacingEven)}, ErrCountTooLarge},
		{"bad radius", 4, []Option{WithRadius(0)}, ErrInvalidRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Generate(tt.count, tt.setters...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate(%v, ...) error = %v, want %v", tt.count, err, tt.wantErr)
			}
			if points != nil {
				t.Errorf("Generate(%v, ...) = %v, want nil", tt.count, points)
			}
		})
	}
}

func TestGenerate_Quadrants(t *testing.T) {
	want := []r2.Point{{X: 0, Y: 250}, {X: 250, Y: 0}, {X: 0, Y: -250}, {X: -250, Y: 0}}
	for _, s := range []Spacing{SpacingTruncated, SpacingEven} {
		t.Run(s.String(), func(t *testing.T) {
			got, err := Generate(4, WithSpacing(s))
			if err != nil {
				t.Fatalf("Generate(4, WithSpacing(%v)) error = %v, want nil", s, err)
			}
			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, epsilon)); diff != "" {
				t.Errorf("Generate(4, WithSpacing(%v)) mismatch (-want +got):\n%v", s, diff)
			}
		})
	}
}

func TestGenerate_TruncatedCount(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{1, 1},
		{2, 2},
		{4, 4},
		{7, 8},
		{100, 120},
		{200, 360},
		{359, 360},
		{360, 360},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("N%d", tt.count), func(t *testing.T) {
			points, err := Generate(tt.count)
			if err != nil {
				t.Fatalf("Generate(%v) error = %v, want nil", tt.count, err)
			}
			if len(points) != tt.want {
				t.Errorf("Generate(%v) len = %v, want %v", tt.count, len(points), tt.want)
			}
			if got := NumPoints(tt.count); got != tt.want {
				t.Errorf("NumPoints(%v) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestGenerate_EvenCount(t *testing.T) {
	for _, count := range []int{1, 7, 100, 361, 1000} {
		t.Run(fmt.Sprintf("N%d", count), func(t *testing.T) {
			points, err := Generate(count, WithSpacing(SpacingEven))
			if err != nil {
				t.Fatalf("Generate(%v, WithSpacing(SpacingEven)) error = %v, want nil", count, err)
			}
			if len(points) != count {
				t.Errorf("Generate(%v, WithSpacing(SpacingEven)) len = %v, want %v", count,
					len(points), count)
			}
		})
	}
}

func TestGenerate_OnCircle(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		setters []Option
		radius  float64
	}{
		{"truncated default radius", 360, nil, DefaultRadius},
		{"truncated odd count", 13, nil, DefaultRadius},
		{"even custom radius", 1000, []Option{WithSpacing(SpacingEven), WithRadius(3)}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Generate(tt.count, tt.setters...)
			if err != nil {
				t.Fatalf("Generate(%v, ...) error = %v, want nil", tt.count, err)
			}
			for i, p := range points {
				if math.Abs(p.Norm()-tt.radius) > epsilon {
					t.Errorf("Generate(%v, ...)[%d] norm = %v, want ≈%v", tt.count, i,
						p.Norm(), tt.radius)
				}
			}
		})
	}
}

func TestGenerate_Distinct(t *testing.T) {
	points, err := Generate(360)
	if err != nil {
		t.Fatalf("Generate(360) error = %v, want nil", err)
	}
	for i := 1; i < len(points); i++ {
		if d := points[i].Sub(points[i-1]).Norm(); d < 1 {
			t.Errorf("Generate(360)[%d] distance to previous = %v, want ≥1", i, d)
		}
	}
}

func TestNumPoints_Rejected(t *testing.T) {
	for _, count := range []int{-1, 0, 361} {
		if got := NumPoints(count); got != 0 {
			t.Errorf("NumPoints(%v) = %v, want 0", count, got)
		}
	}
}

// Benchmarks

func BenchmarkGenerate(b *testing.B) {
	sizes := []int{1e+1, 1e+2, 1e+3, 1e+4}
	for _, count := range sizes {
		b.Run(fmt.Sprintf("N%d", count), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_, err := Generate(count, WithSpacing(SpacingEven))
				if err != nil {
					b.Fatalf("Generate(...) error = %v, want nil", err)
				}
			}
		})
	}
}
