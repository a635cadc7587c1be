// Package batch renders a sequence of animation frames and writes one image
// per frame.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"

	"fractal-renderer/internal/imageio"
	"fractal-renderer/internal/palette"
	"fractal-renderer/internal/raster"
	"fractal-renderer/internal/view"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Ext       string // output extension, ".webp" when empty
	Width     int
	Height    int
	Samples   int             // per-axis subgrid; 0 follows each frame's AntiAliasing flag
	Palette   palette.Palette // nil uses each frame's palette index
	Pool      *raster.Pool    // shared band workers
	Workers   int             // frames in flight
	Keep      bool            // keep a copy of each frame in Result.Image
	Quiet     bool
}

// Frame is one view of the sequence.
type Frame struct {
	Index int
	View  view.Config
}

// Result holds the outcome of one frame.
type Result struct {
	Frame   int
	File    string
	Success bool
	Error   string
	Elapsed time.Duration
	Image   *image.NRGBA
}

// Frames numbers a list of views.
func Frames(views []view.Config) []Frame {
	frames := make([]Frame, len(views))
	for i, v := range views {
		frames[i] = Frame{Index: i, View: v}
	}
	return frames
}

// FileName is the image name of frame i.
func (c Config) FileName(i int) string {
	ext := c.Ext
	if ext == "" {
		ext = ".webp"
	}
	return fmt.Sprintf("%05d%s", i, ext)
}

// Run renders all frames. Up to Workers frames are in flight; their bands
// share cfg.Pool. Each frame worker reuses one FrameBuffer.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := max(1, cfg.Workers)
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if !cfg.Quiet && term.IsTerminal(int(os.Stdout.Fd())) {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.2f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
			for idx := range frameChan {
				results[idx] = processFrame(cfg, fb, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, fb *raster.FrameBuffer, f Frame) Result {
	start := time.Now()
	name := cfg.FileName(f.Index)

	pass := raster.NewPass(f.View)
	pass.Palette = cfg.Palette
	if cfg.Samples > 0 {
		pass.Samples = cfg.Samples
	}
	cfg.Pool.Render(pass, fb)

	res := Result{Frame: f.Index, File: name}
	if err := imageio.Save(filepath.Join(cfg.OutputDir, name), fb.Image()); err != nil {
		res.Error = err.Error()
		return res
	}
	if cfg.Keep {
		res.Image = fb.Snapshot()
	}
	res.Success = true
	res.Elapsed = time.Since(start)
	raster.Logger().Debug("frame written", "frame", f.Index, "file", name, "elapsed", res.Elapsed)
	return res
}
