package latch

import (
	"image"
	"image/color"
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/latch/rimage"
	"go.viam.com/latch/vision/keypoints"
)

// paintPatch fills the PatchSize x PatchSize window centered on (cx, cy) with value.
func paintPatch(img *image.Gray, cx, cy int, value uint8) {
	for y := cy - patchBefore; y <= cy+patchAfter; y++ {
		for x := cx - patchBefore; x <= cx+patchAfter; x++ {
			img.SetGray(x, y, color.Gray{value})
		}
	}
}

func TestSamplePoints(t *testing.T) {
	// Triplet 0 is A(-5, 1) B(-16, 16) C(-9, -21).
	for _, tc := range []struct {
		name   string
		kp     keypoints.KeyPoint
		px, py []int32
	}{
		{"reference scale", keypoints.KeyPoint{X: 100, Y: 100, Scale: 7}, []int32{95, 84, 91}, []int32{101, 116, 79}},
		{"quarter turn", keypoints.KeyPoint{X: 100, Y: 100, Scale: 7, Angle: math.Pi / 2}, []int32{99, 84, 121}, []int32{95, 84, 91}},
		{"double scale is clamped", keypoints.KeyPoint{X: 100, Y: 100, Scale: 14}, []int32{90, 68, 82}, []int32{102, 132, 68}},
		{"ties round to even", keypoints.KeyPoint{X: 100.5, Y: 100.5, Scale: 7}, []int32{96, 84, 92}, []int32{102, 116, 80}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			frame := newKeypointFrame(tc.kp)
			px, py := frame.samplePoints(&tripletVecs[0])
			test.That(t, px[:3], test.ShouldResemble, tc.px)
			test.That(t, py[:3], test.ShouldResemble, tc.py)
		})
	}
}

func TestPatchDistanceDelta(t *testing.T) {
	kp := keypoints.KeyPoint{X: 100, Y: 100, Scale: 7}
	frame := newKeypointFrame(kp)
	px, py := frame.samplePoints(&tripletVecs[0])
	ax, ay := int(px[0]), int(py[0])
	bx, by := int(px[1]), int(py[1])
	cx, cy := int(px[2]), int(py[2])

	for _, tc := range []struct {
		name    string
		a, b, c uint8
		delta   int32
	}{
		{"C matches anchor", 100, 100, 0, -PatchSize * PatchSize * 100 * 100},
		{"A matches anchor", 0, 100, 100, PatchSize * PatchSize * 100 * 100},
		{"tie", 50, 50, 50, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewGray(image.Rect(0, 0, 200, 200))
			paintPatch(img, ax, ay, tc.a)
			paintPatch(img, bx, by, tc.b)
			paintPatch(img, cx, cy, tc.c)
			view := rimage.NewGrayView(img)

			test.That(t, patchDistanceDelta(view, px, py), test.ShouldEqual, tc.delta)
			test.That(t, frame.evaluate(view, &tripletVecs[0]), test.ShouldEqual, tc.delta < 0)

			var desc Descriptor
			computeDescriptor(view, kp, &desc)
			test.That(t, desc.Bit(0), test.ShouldEqual, tc.delta < 0)
		})
	}

	t.Run("single pixel differences", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 200, 200))
		paintPatch(img, ax, ay, 20)
		paintPatch(img, bx, by, 20)
		paintPatch(img, cx, cy, 20)
		// A differs from B by 3 in its bottom right pixel.
		img.SetGray(ax+patchAfter, ay+patchAfter, color.Gray{23})
		view := rimage.NewGrayView(img)
		test.That(t, patchDistanceDelta(view, px, py), test.ShouldEqual, 9)
		test.That(t, frame.evaluate(view, &tripletVecs[0]), test.ShouldBeFalse)

		// C differs from B by 4 in its top left pixel.
		img.SetGray(cx-patchBefore, cy-patchBefore, color.Gray{16})
		test.That(t, patchDistanceDelta(view, px, py), test.ShouldEqual, 9-16)
		test.That(t, frame.evaluate(view, &tripletVecs[0]), test.ShouldBeTrue)
	})

	t.Run("sub image rows follow the parent stride", func(t *testing.T) {
		parent := image.NewGray(image.Rect(0, 0, 240, 220))
		const dx, dy = 10, 7
		paintPatch(parent, ax+dx, ay+dy, 0)
		paintPatch(parent, bx+dx, by+dy, 100)
		paintPatch(parent, cx+dx, cy+dy, 100)
		view := rimage.NewGrayView(parent.SubImage(image.Rect(dx, dy, dx+200, dy+200)).(*image.Gray))
		test.That(t, view.Stride, test.ShouldEqual, 240)
		test.That(t, patchDistanceDelta(view, px, py), test.ShouldEqual, int32(PatchSize*PatchSize*100*100))
	})
}
