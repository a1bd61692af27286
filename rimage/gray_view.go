package rimage

import (
	"image"

	"github.com/pkg/errors"
)

// GrayView is a read-only, row strided view over 8-bit single channel pixels. Pixel (x, y) is
// Pix[y*Stride+x]. Stride may exceed Width for row alignment, and Pix may extend past the last
// declared row so that samplers may read a few pixels beyond Width and Height.
type GrayView struct {
	Pix    []uint8
	Width  int
	Height int
	Stride int
}

// NewGrayView returns a view over the pixels of img. The view's origin is img.Bounds().Min.
func NewGrayView(img *image.Gray) GrayView {
	bounds := img.Bounds()
	if bounds.Empty() {
		return GrayView{Stride: img.Stride}
	}
	return GrayView{
		Pix:    img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y):],
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Stride: img.Stride,
	}
}

// NewGrayViewFromBuffer returns a view over a raw pixel buffer.
func NewGrayViewFromBuffer(pix []uint8, width, height, stride int) (GrayView, error) {
	view := GrayView{Pix: pix, Width: width, Height: height, Stride: stride}
	if err := view.Validate(); err != nil {
		return GrayView{}, err
	}
	return view, nil
}

// Validate checks that the declared geometry fits in the pixel buffer.
func (v GrayView) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return errors.Errorf("image dimensions must be positive, got %dx%d", v.Width, v.Height)
	}
	if v.Stride < v.Width {
		return errors.Errorf("stride (%d) must be at least the width (%d)", v.Stride, v.Width)
	}
	if need := v.Stride*(v.Height-1) + v.Width; len(v.Pix) < need {
		return errors.Errorf("pixel buffer holds %d bytes, a %dx%d image with stride %d needs %d",
			len(v.Pix), v.Width, v.Height, v.Stride, need)
	}
	return nil
}

// Bounds returns the rectangle covered by the view.
func (v GrayView) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// Row returns the pixels of row y starting at column x, up to the end of the buffer. It does not
// check x and y against Width and Height, so samplers may read into padding.
func (v GrayView) Row(x, y int) []uint8 {
	return v.Pix[y*v.Stride+x:]
}
