package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fractal-renderer/internal/config"
	"fractal-renderer/internal/imageio"
	"fractal-renderer/internal/palette"
	"fractal-renderer/internal/postprocess"
	"fractal-renderer/internal/raster"
	"fractal-renderer/internal/view"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "", "Output image (.webp, .png or .tga; default: fractal.webp)")
	width := flag.Int("width", 0, "Output width in pixels (default: 1344)")
	height := flag.Int("height", 0, "Output height in pixels (default: 756)")
	workers := flag.Int("workers", 0, "Number of render goroutines (default: NumCPU)")
	fractal := flag.String("fractal", "", "mandelbrot or burning_ship")
	paletteIdx := flag.Int("palette", -1, "Built-in palette index")
	iterations := flag.Int("iterations", 0, "Fixed iteration cap (disables auto iterations)")
	julia := flag.Bool("julia", false, "Render the Julia set of the configured seed")
	stripes := flag.Bool("stripes", false, "Stripe-average shading")
	inner := flag.Bool("inner", false, "Shade interior points")
	aa := flag.Bool("aa", false, "Anti-aliasing (7x7 supersampling)")
	zoom := flag.Int("zoom", 0, "Zoom in this many steps of 2x")
	at := flag.String("at", "", "Pixel x,y to zoom about (default: image center)")
	detail := flag.Float64("detail", 0, "Multiply the iteration cap by this factor")
	scale := flag.Int("scale", 1, "Render at this multiple of the output size and downsample")
	info := flag.Bool("info", false, "Draw view info in the top-left corner")
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

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:       *output,
		Width:        *width,
		Height:       *height,
		Workers:      *workers,
		Fractal:      *fractal,
		Palette:      *paletteIdx,
		MaxIter:      *iterations,
		Julia:        *julia,
		Stripes:      *stripes,
		Inner:        *inner,
		AntiAliasing: *aa,
	})
	if cfg.Output == "" {
		cfg.Output = "fractal.webp"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !imageio.Supported(cfg.Output) {
		fmt.Fprintf(os.Stderr, "Error: unsupported output format %s (want one of %v)\n", cfg.Output, imageio.Formats)
		os.Exit(1)
	}

	v := cfg.View()

	px, py := cfg.Width/2, cfg.Height/2
	if *at != "" {
		if _, err := fmt.Sscanf(*at, "%d,%d", &px, &py); err != nil {
			fmt.Fprintf(os.Stderr, "Error: -at wants x,y: %v\n", err)
			os.Exit(1)
		}
	}
	for i := 0; i < *zoom; i++ {
		v.ZoomAt(px, py, cfg.Width, cfg.Height, view.ZoomIn)
	}
	if *detail > 0 {
		v.ScaleIterations(*detail)
	}

	pass := raster.NewPass(v)
	if cfg.PaletteImage != "" {
		pal, err := palette.LoadImage(cfg.PaletteImage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using palette %d\n", err, v.Palette)
		} else {
			pass.Palette = pal
		}
	}

	k := max(1, *scale)
	if k > 1 {
		pass.Samples = 1
	}
	fb := raster.NewFrameBuffer(cfg.Width*k, cfg.Height*k)

	fmt.Printf("Fractal: %s, center (%.15g, %.15g), height %.3g, iterations %d\n",
		v.Kind, v.CenterX, v.CenterY, v.Height, v.MaxIter)
	fmt.Printf("Output: %s (%dx%d), Workers: %d, Samples: %d, Scale: %d\n",
		cfg.Output, cfg.Width, cfg.Height, cfg.Workers, pass.Samples, k)

	start := time.Now()
	raster.RenderPass(pass, fb, cfg.Workers)
	elapsed := time.Since(start)

	img := fb.Image()
	if k > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	if *info {
		postprocess.DrawInfo(img, postprocess.FormatInfo(v, elapsed))
	}

	if err := imageio.Save(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done in %dms\n", elapsed.Milliseconds())
}
