package raster

import (
	"runtime"
	"sync"
	"time"
)

// Pool is a fixed set of render goroutines fed from a band queue. Unlike
// Render it keeps its goroutines between calls. Render may be called from
// several goroutines at once as long as each call uses its own FrameBuffer.
type Pool struct {
	workers int
	jobs    chan bandJob
	wg      sync.WaitGroup
	once    sync.Once
}

type bandJob struct {
	sampler *Sampler
	fb      *FrameBuffer
	band    Band
	samples int
	done    *sync.WaitGroup
}

// NewPool starts workers goroutines; workers <= 0 uses one per CPU.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		workers: workers,
		jobs:    make(chan bandJob, workers*2),
	}
	for w := 0; w < workers; w++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				fillBand(j.sampler, j.fb, j.band, j.samples)
				j.done.Done()
			}
		}()
	}
	Logger().Info("raster pool started", "workers", workers)
	return p
}

// Workers reports the pool size.
func (p *Pool) Workers() int {
	return p.workers
}

// Render queues one band per worker for fb and blocks until all are written.
// It must not be called after Close.
func (p *Pool) Render(pass Pass, fb *FrameBuffer) {
	start := time.Now()
	s := NewSampler(pass.View, fb.Width, fb.Height, pass.Palette)
	bands := Bands(fb.Height, p.workers)

	var done sync.WaitGroup
	done.Add(len(bands))
	for _, b := range bands {
		p.jobs <- bandJob{sampler: s, fb: fb, band: b, samples: pass.Samples, done: &done}
	}
	done.Wait()

	Logger().Debug("pool render done",
		"width", fb.Width, "height", fb.Height,
		"bands", len(bands), "samples", pass.Samples,
		"elapsed", time.Since(start))
}

// Close stops the workers after queued bands finish. It is safe to call
// more than once.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.jobs)
		p.wg.Wait()
		Logger().Info("raster pool stopped", "workers", p.workers)
	})
}
