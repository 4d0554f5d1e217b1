// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command gencircle prints the points of a circle of radius 250 in random
// order, one "<x> <y>" pair per line.
//
// Usage:
//
//	gencircle [-seed N] [-even | -random] [-length] [-svg FILE] <count>
//	gencircle -in [-seed N] [-length] [-svg FILE] < points.txt
//
// With -in the points are read from stdin instead of generated. With -length
// the length of the closed path through the printed order comes first, on a
// line of its own.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/2dChan/gencircle"
	"github.com/2dChan/gencircle/render"
	"github.com/2dChan/gencircle/utils"
	"github.com/golang/geo/r2"
)

var (
	errMissingCount     = errors.New("gencircle: missing count argument")
	errExtraArgs        = errors.New("gencircle: too many arguments")
	errConflictingFlags = errors.New("gencircle: conflicting flags")
	errNoPoints         = errors.New("gencircle: no points in input")
)

type config struct {
	count   int
	seed    uint64
	seeded  bool
	even    bool
	random  bool
	input   bool
	length  bool
	svgPath string
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	rnd := utils.NewEntropyRand()
	if cfg.seeded {
		rnd = utils.NewRand(cfg.seed)
	}

	var points []r2.Point
	if cfg.input {
		points, err = readInput(stdin, rnd)
	} else {
		points, err = generate(cfg, rnd)
	}
	if err != nil {
		return err
	}

	if cfg.svgPath != "" {
		if err := renderFile(cfg.svgPath, points); err != nil {
			return err
		}
	}

	if cfg.length {
		if _, err := fmt.Fprintf(stdout, "%.4f\n", gencircle.TourLength(points)); err != nil {
			return err
		}
	}
	return gencircle.WritePoints(stdout, points)
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gencircle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: gencircle [-seed N] [-even | -random] [-length] [-svg FILE] <count>")
		fmt.Fprintln(fs.Output(), "       gencircle -in [-seed N] [-length] [-svg FILE] < points.txt")
		fs.PrintDefaults()
	}
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for a reproducible order; system entropy when unset")
	fs.BoolVar(&cfg.even, "even", false, "place exactly count evenly spaced points")
	fs.BoolVar(&cfg.random, "random", false, "place count uniformly random points in a 500x500 square")
	fs.BoolVar(&cfg.input, "in", false, "read \"<x> <y>\" points from stdin instead of generating them")
	fs.BoolVar(&cfg.length, "length", false, "print the closed path length before the points")
	fs.StringVar(&cfg.svgPath, "svg", "", "also render the points to this SVG file")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seeded = true
		}
	})

	if cfg.even && cfg.random {
		return config{}, fmt.Errorf("%w: -even and -random", errConflictingFlags)
	}
	if cfg.input {
		if cfg.even || cfg.random {
			return config{}, fmt.Errorf("%w: -in with -even or -random", errConflictingFlags)
		}
		if fs.NArg() > 0 {
			return config{}, fmt.Errorf("%w: %q", errExtraArgs, fs.Args())
		}
		return cfg, nil
	}

	switch fs.NArg() {
	case 0:
		return config{}, errMissingCount
	case 1:
	default:
		return config{}, fmt.Errorf("%w: %q", errExtraArgs, fs.Args()[1:])
	}

	count, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return config{}, fmt.Errorf("gencircle: parse count: %w", err)
	}
	cfg.count = count
	return cfg, nil
}

func generate(cfg config, rnd *rand.Rand) ([]r2.Point, error) {
	if cfg.random {
		if cfg.count <= 0 {
			return nil, fmt.Errorf("%w: got %d", gencircle.ErrInvalidCount, cfg.count)
		}
		if cfg.count > gencircle.MaxCount {
			return nil, fmt.Errorf("%w: got %d, maximum %d", gencircle.ErrCountTooLarge,
				cfg.count, gencircle.MaxCount)
		}
		return utils.GenerateRandomPoints(cfg.count, utils.DefaultArea, rnd), nil
	}

	spacing := gencircle.SpacingTruncated
	if cfg.even {
		spacing = gencircle.SpacingEven
	}
	points, err := gencircle.Generate(cfg.count, gencircle.WithSpacing(spacing))
	if err != nil {
		return nil, err
	}
	gencircle.Shuffle(points, rnd)
	return points, nil
}

func readInput(r io.Reader, rnd *rand.Rand) ([]r2.Point, error) {
	points, err := gencircle.ReadPoints(r)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errNoPoints
	}
	gencircle.Shuffle(points, rnd)
	return points, nil
}

func renderFile(path string, points []r2.Point) (err error) {
	var buf bytes.Buffer
	if err := render.Render(&buf, points, render.WithArea(utils.DefaultArea)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = buf.WriteTo(file)
	return err
}
