// Package latch computes 512-bit LATCH (Learned Arrangements of Three Patch Codes) binary
// descriptors for oriented, scaled keypoints on 8-bit grayscale images.
//
// Each descriptor bit compares three 8x8 patches placed around the keypoint by a learned triplet,
// rotated by the keypoint angle and scaled by its size: the bit is set when the third patch is
// closer, in sum of squared differences, to the second patch than the first one is.
package latch

import (
	"image"

	"github.com/pkg/errors"

	"go.viam.com/latch/logging"
	"go.viam.com/latch/rimage"
	"go.viam.com/latch/utils"
	"go.viam.com/latch/vision/keypoints"
)

const (
	// NumTriplets is the number of learned triplets, one per descriptor bit.
	NumTriplets = 512
	// DescriptorSize is the size of a descriptor in bytes.
	DescriptorSize = NumTriplets / 8
	// ScaleUnit is the keypoint scale at which triplet offsets are used as is.
	ScaleUnit = 7.0
	// OffsetClamp bounds, in pixels, how far a patch center may be from its keypoint.
	OffsetClamp = 32
	// PatchSize is the side of the square patches compared by each triplet.
	PatchSize = 8
	// MinKeypointsPerWorker is the smallest share of keypoints worth a goroutine.
	MinKeypointsPerWorker = 16
	// BorderMargin is the distance from the image border inside which keypoints are dropped. A
	// patch centered OffsetClamp pixels away reaches patchAfter more pixels.
	BorderMargin = OffsetClamp + patchAfter

	patchBefore = PatchSize/2 - 1
	patchAfter  = PatchSize / 2
)

// Extractor computes LATCH descriptors with a fixed configuration.
// It is safe for concurrent use.
type Extractor struct {
	cfg    Config
	logger logging.Logger
}

// NewExtractor returns an extractor for the given configuration. A nil configuration uses
// DefaultConfig.
func NewExtractor(cfg *Config, logger logging.Logger) (*Extractor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Global().Sublogger("latch")
	}
	return &Extractor{cfg: *cfg, logger: logger}, nil
}

// FilterKeypoints removes, in place, the keypoints too close to the border of a width x height
// image for their patches to stay inside it. See keypoints.FilterBorder.
func FilterKeypoints(kps keypoints.KeyPoints, width, height int) keypoints.KeyPoints {
	return keypoints.FilterBorder(kps, width, height, BorderMargin)
}

// Compute filters kps with FilterKeypoints and writes the descriptor of the i-th remaining
// keypoint into descs[i]. It returns the filtered keypoints, which share kps' backing array.
// descs must hold at least as many descriptors as there are filtered keypoints; len(kps) always
// suffices.
//
// The patches of a keypoint lying just inside the margin may read one pixel past the right or
// bottom edge of img. Views made by rimage.NewPaddedGrayView or over a larger buffer cover this;
// otherwise the read fails and Compute returns an error.
func (e *Extractor) Compute(
	img rimage.GrayView,
	kps keypoints.KeyPoints,
	descs []Descriptor,
) (keypoints.KeyPoints, error) {
	if err := img.Validate(); err != nil {
		return kps, errors.Wrap(err, "invalid image")
	}
	numIn := len(kps)
	kps = FilterKeypoints(kps, img.Width, img.Height)
	n := len(kps)
	if len(descs) < n {
		return kps, errors.Errorf("descriptor buffer holds %d descriptors but %d keypoints remain after filtering",
			len(descs), n)
	}

	workers := 1
	if e.cfg.Multithread {
		workers = workerCount(n, e.parallelism())
	}
	e.logger.Debugw("computing LATCH descriptors", "keypoints", numIn, "filtered", n, "workers", workers)
	if err := dispatch(img, kps, descs[:n], workers); err != nil {
		return kps, errors.Wrap(err, "error computing LATCH descriptors")
	}
	return kps, nil
}

// ComputeRaw is Compute over a raw pixel buffer where pixel (x, y) is pix[y*stride+x].
func (e *Extractor) ComputeRaw(
	pix []uint8,
	width, height, stride int,
	kps keypoints.KeyPoints,
	descs []Descriptor,
) (keypoints.KeyPoints, error) {
	img, err := rimage.NewGrayViewFromBuffer(pix, width, height, stride)
	if err != nil {
		return kps, err
	}
	return e.Compute(img, kps, descs)
}

func (e *Extractor) parallelism() int {
	if e.cfg.MaxWorkers > 0 {
		return e.cfg.MaxWorkers
	}
	return utils.ParallelFactor
}

// ComputeLATCHDescriptors computes LATCH descriptors on img at kps. The image is padded by
// replicating its edges, so every keypoint that survives filtering gets a descriptor. It returns
// the descriptors and the filtered keypoints they belong to.
func ComputeLATCHDescriptors(
	img *image.Gray,
	kps keypoints.KeyPoints,
	multithread bool,
) ([]Descriptor, keypoints.KeyPoints, error) {
	view, err := rimage.NewPaddedGrayView(img, patchAfter, rimage.BorderReplicate)
	if err != nil {
		return nil, kps, err
	}
	extractor, err := NewExtractor(&Config{Multithread: multithread}, nil)
	if err != nil {
		return nil, kps, err
	}
	descs := make([]Descriptor, len(kps))
	kps, err = extractor.Compute(view, kps, descs)
	if err != nil {
		return nil, kps, err
	}
	return descs[:len(kps)], kps, nil
}
