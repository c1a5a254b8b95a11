package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"magnetite/internal/biot"
	"magnetite/internal/config"
	"magnetite/internal/logging"
	"magnetite/internal/mathutil"
)

type pointList []mathutil.Location

func (p *pointList) String() string { return fmt.Sprint(*p) }

func (p *pointList) Set(s string) error {
	loc, err := parseLocation(s)
	if err != nil {
		return err
	}
	*p = append(*p, loc)
	return nil
}

func parseLocation(s string) (mathutil.Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mathutil.Location{}, fmt.Errorf("point %q: want x,y,z", s)
	}
	var loc mathutil.Location
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mathutil.Location{}, fmt.Errorf("point %q: %w", s, err)
		}
		loc[i] = v
	}
	return loc, nil
}

func describeSegment(i int, s biot.Segment) string {
	a, b := s.Start(), s.End()
	return fmt.Sprintf("  #%d (%g, %g, %g) -> (%g, %g, %g), length %g",
		i, a.X(), a.Y(), a.Z(), b.X(), b.Y(), b.Z(), s.Length())
}

func main() {
	var points pointList
	configFile := flag.String("config", "", "Path to scene config.json (required)")
	trace := flag.Bool("trace", false, "Log per-segment terms to stderr")
	listSegments := flag.Bool("segments", false, "List every segment before the queries")
	flag.Var(&points, "at", "Query point x,y,z (repeatable)")
	flag.Parse()

	if *configFile == "" || (len(points) == 0 && !*listSegments) {
		fmt.Fprintln(os.Stderr, "usage: fieldprobe -config scene.json [-segments] -at x,y,z [-at x,y,z ...]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var opts []biot.Option
	if *trace {
		logger, err := logging.New(os.Stderr, slog.LevelDebug, "text")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, biot.WithTracer(biot.NewSlogTracer(logger)))
	}

	field, err := cfg.BuildField(opts...)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Segments: %d\n", field.Len())
	if *listSegments {
		for i, s := range field.Segments() {
			fmt.Println(describeSegment(i, s))
		}
	}

	for _, p := range points {
		b := field.EvalAtPoint(p)
		if !b.IsFinite() {
			fmt.Printf("  (%g, %g, %g): undefined\n", p.X(), p.Y(), p.Z())
			continue
		}
		fmt.Printf("  (%g, %g, %g): B = (%.6e, %.6e, %.6e) T, |B| = %.6e T\n",
			p.X(), p.Y(), p.Z(), b.X(), b.Y(), b.Z(), b.Abs())
	}
}
