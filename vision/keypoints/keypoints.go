// Package keypoints contains the oriented, scaled keypoints that binary descriptors are computed
// at, and the helpers that prepare them.
package keypoints

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// KeyPoint is a detected image feature. X and Y are pixel coordinates, Angle is the orientation in
// radians and Scale is the feature size (7 is the reference size of the descriptor patterns).
type KeyPoint struct {
	X     float32
	Y     float32
	Scale float32
	Angle float32
}

// KeyPoints is a set of keypoints.
type KeyPoints []KeyPoint

// NewKeyPointFromR2 returns a keypoint centered at center.
func NewKeyPointFromR2(center r2.Point, scale, angle float64) KeyPoint {
	return KeyPoint{
		X:     float32(center.X),
		Y:     float32(center.Y),
		Scale: float32(scale),
		Angle: float32(angle),
	}
}

// Center returns the position of the keypoint.
func (kp KeyPoint) Center() r2.Point {
	return r2.Point{X: float64(kp.X), Y: float64(kp.Y)}
}

// FilterBorder removes, in place, every keypoint lying within margin pixels of the border of a
// width x height image: a keypoint is dropped when x <= margin, y <= margin, x >= width-margin or
// y >= height-margin. The relative order of the remaining keypoints is kept. The returned slice
// shares its backing array with kps, whose tail past the returned length is left unspecified.
func FilterBorder(kps KeyPoints, width, height int, margin float32) KeyPoints {
	m := float64(margin)
	interior := r2.Rect{
		X: r1.Interval{Lo: m, Hi: float64(width) - m},
		Y: r1.Interval{Lo: m, Hi: float64(height) - m},
	}
	kept := kps[:0]
	for _, kp := range kps {
		if interior.InteriorContainsPoint(kp.Center()) {
			kept = append(kept, kp)
		}
	}
	return kept
}

// PlotKeypoints draws keypoints on top of img and saves the result as a PNG. Each keypoint is a
// circle whose radius is its scale, with a tick from the center along its orientation.
func PlotKeypoints(img image.Image, kps KeyPoints, outName string) error {
	bounds := img.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.DrawImage(img, -bounds.Min.X, -bounds.Min.Y)

	dc.SetRGBA(0, 0, 1, 0.7)
	dc.SetLineWidth(1)
	for _, kp := range kps {
		center := kp.Center()
		radius := math.Max(float64(kp.Scale), 1)
		dc.DrawCircle(center.X, center.Y, radius)
		dc.Stroke()
		sin, cos := math.Sincos(float64(kp.Angle))
		tip := center.Add(r2.Point{X: cos, Y: sin}.Mul(radius))
		dc.DrawLine(center.X, center.Y, tip.X, tip.Y)
		dc.Stroke()
	}
	return dc.SavePNG(outName)
}
