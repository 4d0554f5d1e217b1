// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gencircle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
)

var ErrMalformedLine = errors.New("gencircle: expected two values per line")

// FormatPoint returns "<x> <y>" with both coordinates in the shortest
// representation that round-trips to the same float64.
func FormatPoint(p r2.Point) string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}

// WritePoints writes one point per line in sequence order.
func WritePoints(w io.Writer, points []r2.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := bw.WriteString(FormatPoint(p)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPoints parses the format written by WritePoints. Blank lines are
// skipped and values past the second on a line are ignored.
func ReadPoints(r io.Reader) ([]r2.Point, error) {
	var points []r2.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w (line %d)", ErrMalformedLine, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("gencircle: line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("gencircle: line %d: %w", line, err)
		}
		points = append(points, r2.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
