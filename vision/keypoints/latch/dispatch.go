package latch

import (
	"go.viam.com/latch/rimage"
	"go.viam.com/latch/utils"
	"go.viam.com/latch/vision/keypoints"
)

// workerCount returns the number of workers used for n keypoints: one per MinKeypointsPerWorker
// keypoints, at most parallelism.
func workerCount(n, parallelism int) int {
	return utils.MinInt(n/MinKeypointsPerWorker, parallelism)
}

// dispatch computes the descriptors of all keypoints into descs. With more than one worker the
// keypoints are split into contiguous chunks, one goroutine each, and dispatch returns once all
// chunks are done. Each worker writes only its own part of descs.
func dispatch(img rimage.GrayView, kps keypoints.KeyPoints, descs []Descriptor, workers int) error {
	return utils.GroupWorkParallel(len(kps), workers, func(_, from, to int) error {
		computeRange(img, kps, descs, from, to)
		return nil
	})
}
