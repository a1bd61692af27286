package main

import (
	"fmt"
	"image"
	"io"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/golang/geo/r2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"go.viam.com/latch/logging"
	"go.viam.com/latch/rimage"
	"go.viam.com/latch/utils"
	"go.viam.com/latch/vision/keypoints"
	"go.viam.com/latch/vision/keypoints/latch"
)

type benchOptions struct {
	Width        int
	Height       int
	NumKeypoints int
	Runs         int
	Seed         int64
	PlotPath     string
}

func (opts benchOptions) validate() error {
	minSide := 2*latch.BorderMargin + 1
	if opts.Width < minSide || opts.Height < minSide {
		return errors.Errorf("image must be at least %dx%d, got %dx%d", minSide, minSide, opts.Width, opts.Height)
	}
	if opts.NumKeypoints < 0 {
		return errors.Errorf("keypoints cannot be negative, got %d", opts.NumKeypoints)
	}
	if opts.Runs < 1 {
		return errors.Errorf("runs must be at least 1, got %d", opts.Runs)
	}
	return nil
}

// timing holds the wall time of every run of one extraction mode, in milliseconds.
type timing struct {
	mode     string
	filtered int
	samples  []float64
}

// syntheticImage returns a textured image: a diagonal ramp with blocks of noise on top.
func syntheticImage(rng *rand.Rand, width, height int) *image.Gray {
	const block = 6
	img := image.NewGray(image.Rect(0, 0, width, height))
	noise := make([]int, ((width+block-1)/block)*((height+block-1)/block))
	for i := range noise {
		noise[i] = rng.Intn(160) - 80
	}
	blocksPerRow := (width + block - 1) / block
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			ramp := 255 * (x + y) / (width + height)
			v := ramp + noise[(y/block)*blocksPerRow+x/block] + rng.Intn(9) - 4
			row[x] = uint8(utils.MaxInt(0, utils.MinInt(255, v)))
		}
	}
	return img
}

// syntheticKeypoints returns n keypoints spread uniformly over the image, including the border
// band that extraction filters out.
func syntheticKeypoints(rng *rand.Rand, n, width, height int) keypoints.KeyPoints {
	kps := make(keypoints.KeyPoints, n)
	for i := range kps {
		center := r2.Point{X: rng.Float64() * float64(width-1), Y: rng.Float64() * float64(height-1)}
		kps[i] = keypoints.NewKeyPointFromR2(center, 2+rng.Float64()*30, (2*rng.Float64()-1)*math.Pi)
	}
	return kps
}

// timeExtraction runs the extractor runs times on fresh copies of kps and returns the
// descriptors and filtered keypoints of the last run with the duration of every run.
func timeExtraction(
	extractor *latch.Extractor,
	img rimage.GrayView,
	kps keypoints.KeyPoints,
	runs int,
) ([]latch.Descriptor, keypoints.KeyPoints, []float64, error) {
	in := make(keypoints.KeyPoints, len(kps))
	descs := make([]latch.Descriptor, len(kps))
	samples := make([]float64, 0, runs)
	var filtered keypoints.KeyPoints
	for i := 0; i < runs; i++ {
		copy(in, kps)
		start := time.Now()
		var err error
		filtered, err = extractor.Compute(img, in, descs)
		if err != nil {
			return nil, nil, nil, err
		}
		samples = append(samples, float64(time.Since(start))/float64(time.Millisecond))
	}
	return descs[:len(filtered)], filtered, samples, nil
}

func sameDescriptors(a, b []latch.Descriptor) error {
	if len(a) != len(b) {
		return errors.Errorf("descriptor counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return errors.Errorf("descriptor %d differs: %s vs %s", i, a[i], b[i])
		}
	}
	return nil
}

func logHost(logger logging.Logger) {
	logger.Infow("host",
		"goos", runtime.GOOS,
		"goarch", runtime.GOARCH,
		"cpus", runtime.NumCPU(),
		"parallel_factor", utils.ParallelFactor,
		"sse41", cpu.X86.HasSSE41,
		"avx2", cpu.X86.HasAVX2,
		"asimd", cpu.ARM64.HasASIMD,
	)
}

// runBenchmark times single threaded extraction against extraction with cfg, checks that both
// produce the same descriptors and writes a timing table to w.
func runBenchmark(w io.Writer, opts benchOptions, cfg *latch.Config, logger logging.Logger) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if cfg == nil {
		cfg = latch.DefaultConfig()
	}
	logHost(logger)

	rng := rand.New(rand.NewSource(opts.Seed))
	img := syntheticImage(rng, opts.Width, opts.Height)
	view, err := rimage.NewPaddedGrayView(img, latch.PatchSize/2, rimage.BorderReplicate)
	if err != nil {
		return err
	}
	kps := syntheticKeypoints(rng, opts.NumKeypoints, opts.Width, opts.Height)

	single, err := latch.NewExtractor(&latch.Config{}, logger.Sublogger("single"))
	if err != nil {
		return err
	}
	configured, err := latch.NewExtractor(cfg, logger.Sublogger("configured"))
	if err != nil {
		return err
	}

	singleDescs, filtered, singleSamples, err := timeExtraction(single, view, kps, opts.Runs)
	if err != nil {
		return errors.Wrap(err, "single threaded extraction failed")
	}
	configuredDescs, _, configuredSamples, err := timeExtraction(configured, view, kps, opts.Runs)
	if err != nil {
		return errors.Wrap(err, "configured extraction failed")
	}
	if err := sameDescriptors(singleDescs, configuredDescs); err != nil {
		return errors.Wrap(err, "single threaded and configured extraction disagree")
	}
	logger.Debugw("descriptors match", "descriptors", len(singleDescs))

	fmt.Fprintln(w, renderTimings([]timing{
		{mode: "single threaded", filtered: len(filtered), samples: singleSamples},
		{
			mode:     fmt.Sprintf("multithread=%v max_workers=%d", cfg.Multithread, cfg.MaxWorkers),
			filtered: len(filtered),
			samples:  configuredSamples,
		},
	}))

	if opts.PlotPath != "" {
		if err := keypoints.PlotKeypoints(img, filtered, opts.PlotPath); err != nil {
			return errors.Wrap(err, "cannot plot keypoints")
		}
		logger.Infof("wrote keypoint overlay to %s", opts.PlotPath)
	}
	return nil
}

func renderTimings(timings []timing) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Mode", "Keypoints", "Runs", "Mean (ms)", "Std dev (ms)", "Min (ms)", "Per keypoint (us)"})
	for _, tm := range timings {
		mean, stdDev := stat.MeanStdDev(tm.samples, nil)
		if len(tm.samples) < 2 {
			stdDev = 0
		}
		perKeypoint := 0.
		if tm.filtered > 0 {
			perKeypoint = 1000 * mean / float64(tm.filtered)
		}
		t.AppendRow(table.Row{
			tm.mode,
			tm.filtered,
			len(tm.samples),
			fmt.Sprintf("%.3f", mean),
			fmt.Sprintf("%.3f", stdDev),
			fmt.Sprintf("%.3f", floats.Min(tm.samples)),
			fmt.Sprintf("%.3f", perKeypoint),
		})
	}
	return t.Render()
}
