package renderer

import (
	"context"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/output"
)

// RenderConfig controls scheduling of a render
type RenderConfig struct {
	NumWorkers int   // Parallel row workers; 1 or less renders on the calling goroutine
	Seed       int64 // Base seed for the per-row random streams
}

// DefaultRenderConfig returns a single-threaded, fixed-seed configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 1,
		Seed:       42,
	}
}

// Raytracer renders a world through a camera
type Raytracer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a raytracer using a path tracing integrator limited to
// the camera's max depth. A nil logger logs under the "renderer" module.
func NewRaytracer(camera *Camera, world geometry.Hittable, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	if logger == nil {
		logger = log.New("renderer")
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewPathTracingIntegrator(camera.MaxDepth(), integrator.DefaultSky()),
		config:     config,
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the integrator used for subsequent renders
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RenderRow renders image row j left to right and returns the averaged linear
// colors plus the number of camera rays traced. It is safe to call
// concurrently for different rows.
func (rt *Raytracer) RenderRow(j int) ([]core.Vec3, int) {
	width := rt.camera.ImageWidth()
	spp := rt.camera.SamplesPerPixel()
	scale := rt.camera.PixelSamplesScale()
	sampler := core.NewSeededSampler(RowSeed(rt.config.Seed, j))

	pixels := make([]core.Vec3, width)
	for i := 0; i < width; i++ {
		var ps PixelStats
		for s := 0; s < spp; s++ {
			ray := rt.camera.GetRay(i, j, sampler)
			ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
		}
		pixels[i] = ps.Scaled(scale)
	}
	return pixels, width * spp
}

// Render renders the whole image into out in raster order. Errors from out
// are returned as-is; cancellation returns ctx.Err().
func (rt *Raytracer) Render(ctx context.Context, out output.PixelWriter) (RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.camera.SamplesPerPixel(),
	}

	rt.logger.Infof("rendering %dx%d at %d spp, depth %d, %d worker(s)",
		width, height, rt.camera.SamplesPerPixel(), rt.camera.MaxDepth(), rt.numWorkers())

	if err := out.Begin(width, height); err != nil {
		return stats, err
	}

	var err error
	if rt.numWorkers() <= 1 {
		err = rt.renderSequential(ctx, out, &stats)
	} else {
		err = rt.renderParallel(ctx, out, &stats)
	}
	stats.RenderTime = time.Since(start)
	if err != nil {
		return stats, err
	}

	if err := out.End(); err != nil {
		return stats, err
	}

	rt.logger.Infof("done: %d samples in %v", stats.TotalSamples, stats.RenderTime)
	return stats, nil
}

func (rt *Raytracer) numWorkers() int {
	if rt.config.NumWorkers < 1 {
		return 1
	}
	return rt.config.NumWorkers
}

func (rt *Raytracer) renderSequential(ctx context.Context, out output.PixelWriter, stats *RenderStats) error {
	height := rt.camera.ImageHeight()
	worker := WorkerStats{ID: 0}

	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rt.logger.Debugf("scanlines remaining: %d", height-j)

		rowStart := time.Now()
		pixels, samples := rt.RenderRow(j)
		worker.RenderTime += time.Since(rowStart)
		worker.Rows++
		worker.Samples += samples
		stats.TotalSamples += samples

		if err := writeRow(out, pixels); err != nil {
			return err
		}
	}

	stats.Workers = []WorkerStats{worker}
	return nil
}

func (rt *Raytracer) renderParallel(ctx context.Context, out output.PixelWriter, stats *RenderStats) error {
	height := rt.camera.ImageHeight()

	workCtx, cancel := context.WithCancel(ctx)

	pool := NewWorkerPool(rt, rt.numWorkers(), height)
	workers := make([]WorkerStats, pool.GetNumWorkers())
	for i := range workers {
		workers[i].ID = i
	}
	stats.Workers = workers

	pool.Start(workCtx)
	// Cancel first so workers skip whatever is still queued on early return
	defer func() {
		cancel()
		pool.Stop()
	}()

	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}

	// Rows finish out of order; hold them until every earlier row is written
	pending := make(map[int][]core.Vec3)
	next := 0
	for received := 0; received < height; received++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			return result.Error
		}

		w := &workers[result.WorkerID]
		w.Rows++
		w.Samples += result.Samples
		w.RenderTime += result.Elapsed
		stats.TotalSamples += result.Samples

		pending[result.Row] = result.Pixels
		for {
			pixels, ready := pending[next]
			if !ready {
				break
			}
			delete(pending, next)
			rt.logger.Debugf("scanlines remaining: %d", height-next)
			if err := writeRow(out, pixels); err != nil {
				return err
			}
			next++
		}
	}

	return ctx.Err()
}

func writeRow(out output.PixelWriter, pixels []core.Vec3) error {
	for _, c := range pixels {
		if err := out.WritePixel(c); err != nil {
			return err
		}
	}
	return nil
}
