package latch

import (
	"math"

	"go.viam.com/latch/rimage"
	"go.viam.com/latch/vecmath"
	"go.viam.com/latch/vision/keypoints"
)

// keypointFrame holds the per keypoint values broadcast to every lane.
type keypointFrame struct {
	x     vecmath.Float4
	y     vecmath.Float4
	sin   vecmath.Float4
	cos   vecmath.Float4
	scale vecmath.Float4
}

func newKeypointFrame(kp keypoints.KeyPoint) keypointFrame {
	angle := float64(kp.Angle)
	return keypointFrame{
		x:     vecmath.SetFloat4(kp.X),
		y:     vecmath.SetFloat4(kp.Y),
		sin:   vecmath.SetFloat4(float32(math.Sin(angle))),
		cos:   vecmath.SetFloat4(float32(math.Cos(angle))),
		scale: vecmath.SetFloat4(kp.Scale).Div(vecmath.SetFloat4(ScaleUnit)),
	}
}

// samplePoints rotates and scales the triplet into the keypoint frame and returns the pixel
// centers of patches A, B and C in lanes 0, 1 and 2. Offsets are clamped to OffsetClamp pixels.
func (f *keypointFrame) samplePoints(t *tripletVec) (vecmath.Int4, vecmath.Int4) {
	xs := t.xs.Mul(f.scale)
	ys := t.ys.Mul(f.scale)
	rx := xs.Mul(f.cos).Sub(ys.Mul(f.sin))
	ry := xs.Mul(f.sin).Add(ys.Mul(f.cos))
	px := rx.Clamp(-OffsetClamp, OffsetClamp).Add(f.x).RoundToInt4()
	py := ry.Clamp(-OffsetClamp, OffsetClamp).Add(f.y).RoundToInt4()
	return px, py
}

// evaluate reports whether patch C is closer to the anchor patch B than patch A is.
func (f *keypointFrame) evaluate(img rimage.GrayView, t *tripletVec) bool {
	px, py := f.samplePoints(t)
	return patchDistanceDelta(img, px, py) < 0
}

// patchDistanceDelta returns sum((A-B)^2) - sum((C-B)^2) over the PatchSize x PatchSize windows
// around the centers in lanes 0 (A), 1 (B) and 2 (C). Windows span columns and rows
// [-patchBefore, patchAfter] around each center.
func patchDistanceDelta(img rimage.GrayView, px, py vecmath.Int4) int32 {
	ax, ay := int(px[0])-patchBefore, int(py[0])-patchBefore
	bx, by := int(px[1])-patchBefore, int(py[1])-patchBefore
	cx, cy := int(px[2])-patchBefore, int(py[2])-patchBefore

	var accum vecmath.Int4
	for row := 0; row < PatchSize; row++ {
		a := img.Row(ax, ay+row)[:PatchSize]
		b := img.Row(bx, by+row)[:PatchSize]
		c := img.Row(cx, cy+row)[:PatchSize]

		b1 := vecmath.LoadUint8Int4(b)
		b2 := vecmath.LoadUint8Int4(b[4:])
		da := vecmath.LoadUint8Int4(a).Sub(b1).Square().
			Add(vecmath.LoadUint8Int4(a[4:]).Sub(b2).Square())
		dc := vecmath.LoadUint8Int4(c).Sub(b1).Square().
			Add(vecmath.LoadUint8Int4(c[4:]).Sub(b2).Square())
		accum = da.Sub(dc).Add(accum)
	}
	return accum.ReduceSum()
}
