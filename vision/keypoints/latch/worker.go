package latch

import (
	"go.viam.com/latch/rimage"
	"go.viam.com/latch/vision/keypoints"
)

// fillDescriptor overwrites desc with the bits returned by bitAt for triplets 0 to NumTriplets-1,
// asked in order. Triplet fragment*8+bit lands in bit 7-bit of byte fragment.
func fillDescriptor(desc *Descriptor, bitAt func(triplet int) bool) {
	for fragment := range desc {
		var b byte
		for bit := 0; bit < 8; bit++ {
			if bitAt(fragment*8 + bit) {
				b |= 0x80 >> bit
			}
		}
		desc[fragment] = b
	}
}

// computeDescriptor writes the descriptor of kp on img into desc.
func computeDescriptor(img rimage.GrayView, kp keypoints.KeyPoint, desc *Descriptor) {
	frame := newKeypointFrame(kp)
	fillDescriptor(desc, func(triplet int) bool {
		return frame.evaluate(img, &tripletVecs[triplet])
	})
}

// computeRange computes the descriptors of kps[from:to] into descs[from:to].
func computeRange(img rimage.GrayView, kps keypoints.KeyPoints, descs []Descriptor, from, to int) {
	for i := from; i < to; i++ {
		computeDescriptor(img, kps[i], &descs[i])
	}
}
