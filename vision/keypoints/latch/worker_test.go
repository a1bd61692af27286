package latch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"go.viam.com/test"

	"go.viam.com/latch/rimage"
	"go.viam.com/latch/utils"
	"go.viam.com/latch/vision/keypoints"
)

func uniformImage(width, height int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Gray{value}}, image.Point{}, draw.Src)
	return img
}

func TestFillDescriptor(t *testing.T) {
	var desc Descriptor
	for i := range desc {
		desc[i] = 0xff
	}
	var asked []int
	fillDescriptor(&desc, func(triplet int) bool {
		asked = append(asked, triplet)
		return triplet%3 == 0
	})

	test.That(t, len(asked), test.ShouldEqual, NumTriplets)
	for i, triplet := range asked {
		test.That(t, triplet, test.ShouldEqual, i)
	}
	for i := 0; i < NumTriplets; i++ {
		test.That(t, desc.Bit(i), test.ShouldEqual, i%3 == 0)
	}
	// Triplets 0, 3 and 6 land in bits 7, 4 and 1 of the first byte.
	test.That(t, desc[0], test.ShouldEqual, byte(0x92))
}

func TestWorkerCount(t *testing.T) {
	for _, tc := range []struct {
		n, parallelism, expected int
	}{
		{0, 8, 0},
		{1, 8, 0},
		{15, 8, 0},
		{16, 8, 1},
		{32, 8, 2},
		{1000, 8, 8},
		{1000, 100, 62},
		{1000, 1, 1},
	} {
		test.That(t, workerCount(tc.n, tc.parallelism), test.ShouldEqual, tc.expected)
	}
}

func TestDispatchCoversEveryKeypoint(t *testing.T) {
	view := rimage.NewGrayView(uniformImage(120, 120, 77))
	for _, n := range []int{0, 1, 15, 16, 1000} {
		for _, parallelism := range []int{1, 2, 3, 4, 8, 64} {
			t.Run(fmt.Sprintf("n=%d,parallelism=%d", n, parallelism), func(t *testing.T) {
				workers := workerCount(n, parallelism)
				covered := make([]int, n)
				for _, r := range utils.PartitionRanges(n, workers) {
					test.That(t, r.Len(), test.ShouldBeGreaterThan, 0)
					for i := r.From; i < r.To; i++ {
						covered[i]++
					}
				}
				for i := range covered {
					test.That(t, covered[i], test.ShouldEqual, 1)
				}

				kps := make(keypoints.KeyPoints, n)
				for i := range kps {
					kps[i] = keypoints.KeyPoint{X: 60, Y: 60, Scale: float32(1 + i%20), Angle: float32(i)}
				}
				descs := make([]Descriptor, n+1)
				for i := range descs {
					for j := range descs[i] {
						descs[i][j] = 0xff
					}
				}
				test.That(t, dispatch(view, kps, descs[:n], workers), test.ShouldBeNil)
				for i := 0; i < n; i++ {
					test.That(t, descs[i], test.ShouldResemble, Descriptor{})
				}
				test.That(t, descs[n].Weight(), test.ShouldEqual, NumTriplets)
			})
		}
	}
}
