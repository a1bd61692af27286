package latch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/latch/logging"
	"go.viam.com/latch/vision/keypoints"
)

// goldenCase is a set of reference descriptors, stored in the LSB first byte layout, for
// keypoints on an image whose pixels come from a xorshift32 generator.
type goldenCase struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Stride      int          `json:"stride"`
	Rows        int          `json:"rows"`
	Seed        uint32       `json:"seed"`
	Keypoints   [][4]float32 `json:"keypoints"`
	Descriptors []string     `json:"descriptors"`
}

func loadGoldenCase(t *testing.T) goldenCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "latch_golden.json"))
	test.That(t, err, test.ShouldBeNil)
	var gc goldenCase
	test.That(t, json.Unmarshal(data, &gc), test.ShouldBeNil)
	return gc
}

// pixels fills Rows rows of Stride bytes. The row past Height is read by keypoints just inside
// the margin.
func (gc goldenCase) pixels() []uint8 {
	pix := make([]uint8, gc.Stride*gc.Rows)
	state := gc.Seed
	for i := range pix {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		x, y := i%gc.Stride, i/gc.Stride
		pix[i] = uint8((x+2*y)/3 + int(state>>26))
	}
	return pix
}

func (gc goldenCase) keypoints() keypoints.KeyPoints {
	kps := make(keypoints.KeyPoints, len(gc.Keypoints))
	for i, kp := range gc.Keypoints {
		kps[i] = keypoints.KeyPoint{X: kp[0], Y: kp[1], Scale: kp[2], Angle: kp[3]}
	}
	return kps
}

func TestComputeMatchesReferenceDescriptors(t *testing.T) {
	gc := loadGoldenCase(t)
	test.That(t, len(gc.Descriptors), test.ShouldBeGreaterThan, MinKeypointsPerWorker*2)
	pix := gc.pixels()
	logger := logging.NewTestLogger(t)

	for _, cfg := range []*Config{{}, {Multithread: true, MaxWorkers: 4}} {
		extractor, err := NewExtractor(cfg, logger)
		test.That(t, err, test.ShouldBeNil)

		kps := gc.keypoints()
		descs := make([]Descriptor, len(kps))
		filtered, err := extractor.ComputeRaw(pix, gc.Width, gc.Height, gc.Stride, kps, descs)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(filtered), test.ShouldEqual, len(gc.Descriptors))
		for i, expected := range gc.Descriptors {
			test.That(t, descs[i].LSBFirst().String(), test.ShouldEqual, expected)
		}
	}
}
