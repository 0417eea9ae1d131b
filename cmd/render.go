package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a built-in scene to an image file, or to stdout when out is "-".
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	seed := time.Now().UnixNano()
	if ctx.IsSet("seed") {
		seed = ctx.Int64("seed")
	}

	sc, err := scene.New(ctx.String("scene"), seed)
	if err != nil {
		return err
	}

	config := sc.Camera
	if ctx.IsSet("width") {
		config.ImageWidth = ctx.Int("width")
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}

	camera, err := renderer.NewCamera(config)
	if err != nil {
		return err
	}

	workers := ctx.Int("workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rt, err := renderer.NewRaytracer(camera, sc.World, renderer.RenderConfig{
		NumWorkers: workers,
		Seed:       seed,
	}, logger)
	if err != nil {
		return err
	}

	outPath := ctx.String("out")
	sink, closeSink, err := openOutput(outPath, ctx.App.Writer)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q (seed %d) to %s", sc.Name, seed, outPath)
	stats, err := rt.Render(sigCtx, output.NewWriterForPath(outPath, sink))
	if cerr := closeSink(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Noticef("render statistics\n%s", formatRenderStats(stats))
	return nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Samples", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		percent := 0.0
		if stats.Height > 0 {
			percent = 100 * float64(stat.Rows) / float64(stats.Height)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d spp", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.TotalSamples),
		"TOTAL",
		stats.RenderTime.String(),
	})

	table.Render()
	return buf.String()
}
