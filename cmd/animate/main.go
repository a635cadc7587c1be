package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fractal-renderer/internal/batch"
	"fractal-renderer/internal/config"
	"fractal-renderer/internal/imageio"
	"fractal-renderer/internal/palette"
	"fractal-renderer/internal/raster"
	"fractal-renderer/internal/view"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "webp", "Frame format: webp, png or tga")
	frames := flag.Int("frames", 0, "Number of frames (default: 100)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 1344)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 756)")
	workers := flag.Int("workers", 0, "Band goroutines shared by all frames (default: NumCPU)")
	inFlight := flag.Int("in-flight", 2, "Frames rendered concurrently")
	fractal := flag.String("fractal", "", "mandelbrot or burning_ship")
	paletteIdx := flag.Int("palette", -1, "Built-in palette index")
	aa := flag.Bool("aa", false, "Anti-aliasing (7x7 supersampling)")
	anim := flag.String("anim", "", "Also write all frames as one animated WebP at this path")
	verbose := flag.Bool("v", false, "Debug logging to stderr")

	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		Output:       *outputDir,
		Width:        *width,
		Height:       *height,
		Workers:      *workers,
		Fractal:      *fractal,
		Palette:      *paletteIdx,
		Frames:       *frames,
		AntiAliasing: *aa,
	})
	if cfg.Output == "" {
		cfg.Output = "frames"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ext := "." + *format
	if !imageio.Supported("frame" + ext) {
		fmt.Fprintf(os.Stderr, "Error: unsupported format %q\n", *format)
		os.Exit(1)
	}

	var pal palette.Palette
	if cfg.PaletteImage != "" {
		cache := palette.NewCache()
		p, err := cache.Resolve(cfg.PaletteImage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using palette %d\n", err, cfg.Palette)
		}
		pal = p
	}

	views := view.Frames(cfg.View(), cfg.Tween(), cfg.Animation.Frames)
	list := batch.Frames(views)

	pool := raster.NewPool(cfg.Workers)
	defer pool.Close()

	fmt.Printf("Fractal zoom animation: %d frames toward (%.15g, %.15g)\n",
		len(list), *cfg.Animation.TargetX, *cfg.Animation.TargetY)
	fmt.Printf("Size: %dx%d, Workers: %d, In flight: %d\n", cfg.Width, cfg.Height, pool.Workers(), *inFlight)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.Output,
		Ext:       ext,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Palette:   pal,
		Pool:      pool,
		Workers:   *inFlight,
		Keep:      *anim != "",
	}, list)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(list))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.Output, "frames.json")
	if err := batch.WriteManifest(manifestPath, list, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if *anim != "" && failed == 0 {
		imgs := make([]image.Image, len(results))
		for i, r := range results {
			imgs[i] = r.Image
		}
		if err := imageio.SaveAnimation(*anim, imgs, cfg.Animation.FrameDelay); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Animation: %s\n", *anim)
		}
	}

	if failed > 0 {
		pool.Close()
		os.Exit(1)
	}
}
