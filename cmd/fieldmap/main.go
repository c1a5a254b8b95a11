package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"magnetite/internal/biot"
	"magnetite/internal/config"
	"magnetite/internal/export"
	"magnetite/internal/grid"
	"magnetite/internal/logging"
	"magnetite/internal/render"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to scene config.json (required)")
	resolution := flag.Int("res", 0, "Samples per side (default: 10)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: field-out)")
	format := flag.String("format", "", "Image format: webp or png (default: webp)")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error")
	trace := flag.Bool("trace", false, "Log per-segment terms at debug level")

	flag.Parse()

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:  *outputDir,
		Resolution: *resolution,
		Workers:    *workers,
		Format:     *format,
		LogLevel:   *logLevel,
		Trace:      *trace,
	})

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, level, cfg.LogFormat)
	if err != nil {
		return err
	}

	imgFormat, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	compression, err := export.ParseCompression(cfg.Compression)
	if err != nil {
		return err
	}
	g, err := cfg.Grid()
	if err != nil {
		return err
	}

	pal := render.DefaultPalette()
	if cfg.Palette != "" {
		if pal, err = render.LoadPalette(cfg.Palette); err != nil {
			return err
		}
	}

	var opts []biot.Option
	if cfg.Trace {
		opts = append(opts, biot.WithTracer(biot.NewSlogTracer(logger)))
	}
	field, err := cfg.BuildField(opts...)
	if err != nil {
		return err
	}

	fmt.Printf("Biot-Savart field map → %s\n", imgFormat)
	fmt.Printf("Segments: %d, Grid: %dx%d on %s @ %g, Workers: %d\n",
		field.Len(), g.Cols, g.Rows, g.Plane, g.Offset, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := grid.Evaluate(ctx, field, g,
		grid.WithWorkers(cfg.Workers),
		grid.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	stats := res.Stats()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	manifest := export.Manifest{
		Segments:  field.Len(),
		Grid:      g,
		Stats:     stats,
		Image:     "field" + imgFormat.Ext(),
		ElapsedMS: elapsed.Milliseconds(),
	}

	img := render.Heatmap(res, pal, render.HeatmapOptions{Log: cfg.LogScale})
	img = render.Resize(img, cfg.ImageSize, cfg.ImageSize, cfg.Smooth)
	render.DrawLegend(img, []string{
		fmt.Sprintf("|B| %.3g .. %.3g T", stats.MinAbs, stats.MaxAbs),
		fmt.Sprintf("%s @ %g", g.Plane, g.Offset),
	})
	if err := writeFile(filepath.Join(cfg.OutputDir, manifest.Image), func(f *os.File) error {
		return render.Encode(f, img, imgFormat)
	}); err != nil {
		return err
	}

	if cfg.CSV {
		manifest.Samples = "samples.csv" + compression.Ext()
		if err := writeFile(filepath.Join(cfg.OutputDir, manifest.Samples), func(f *os.File) error {
			w, err := export.NewCompressor(f, compression)
			if err != nil {
				return err
			}
			if err := export.WriteCSV(w, res); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		}); err != nil {
			return err
		}
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Samples: %d defined, %d undefined\n", stats.Defined, stats.Undefined)
	fmt.Printf("|B|: min %.4g, max %.4g, mean %.4g T\n", stats.MinAbs, stats.MaxAbs, stats.MeanAbs)

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := export.WriteManifest(manifestPath, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}
	return nil
}

func writeFile(path string, fn func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
