// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws point sequences as SVG images.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
)

const (
	defaultArea    = 500.0
	defaultPadding = 32

	backgroundStyle = "fill:rgb(204,204,204)"
	areaStyle       = "fill:rgb(178,178,178)"
	pathStyle       = "fill:none;stroke:rgb(64,64,64);stroke-width:2;stroke-opacity:1.0"
	pointStyle      = "fill:rgb(178,51,51)"
	labelStyle      = "font-family:monospace;font-size:12px;text-anchor:middle;fill:rgb(0,0,0)"

	pointRadius = 5
)

var (
	ErrInvalidArea    = errors.New("render: area must be positive")
	ErrInvalidPadding = errors.New("render: padding must be non-negative")
)

type Options struct {
	// Area is the side length of the square, centered at the origin, mapped
	// onto the canvas. Points outside of it are drawn off the area.
	Area    float64
	Padding int
	Labels  bool
}

type Option func(*Options) error

func WithArea(area float64) Option {
	return func(o *Options) error {
		if !(area > 0) {
			return fmt.Errorf("%w: %v", ErrInvalidArea, area)
		}
		o.Area = area
		return nil
	}
}

func WithPadding(padding int) Option {
	return func(o *Options) error {
		if padding < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidPadding, padding)
		}
		o.Padding = padding
		return nil
	}
}

// WithLabels draws the index of each point in the sequence above it.
func WithLabels(labels bool) Option {
	return func(o *Options) error {
		o.Labels = labels
		return nil
	}
}

// Render writes an SVG image of points to w. The closed path visiting the
// points in sequence order is drawn under the points. The y axis points up.
func Render(w io.Writer, points []r2.Point, setters ...Option) error {
	opts := Options{
		Area:    defaultArea,
		Padding: defaultPadding,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return err
		}
	}

	ew := &errWriter{w: w}
	size := opts.Size()
	areaSize := int(math.Round(opts.Area))

	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, backgroundStyle)
	canvas.Rect(opts.Padding, opts.Padding, areaSize, areaSize, areaStyle)

	if len(points) > 1 {
		xPoints := make([]int, len(points))
		yPoints := make([]int, len(points))
		for i, p := range points {
			xPoints[i], yPoints[i] = opts.PointToScreen(p)
		}
		canvas.Polygon(xPoints, yPoints, pathStyle)
	}

	for i, p := range points {
		x, y := opts.PointToScreen(p)
		canvas.Circle(x, y, pointRadius, pointStyle)
		if opts.Labels {
			canvas.Text(x, y-2*pointRadius, strconv.Itoa(i), labelStyle)
		}
	}
	canvas.End()

	return ew.err
}

// Size returns the width and height of the canvas.
func (o Options) Size() int {
	return int(math.Round(o.Area)) + 2*o.Padding
}

// PointToScreen maps a point to canvas coordinates.
func (o Options) PointToScreen(p r2.Point) (int, int) {
	half := o.Area / 2
	x := float64(o.Padding) + p.X + half
	y := float64(o.Padding) + half - p.Y
	return int(math.Round(x)), int(math.Round(y))
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
