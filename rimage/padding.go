package rimage

import (
	"image"

	"github.com/pkg/errors"
)

// BorderPad is used to define the type of padding applied outside an image.
type BorderPad int

const (
	// BorderConstant pads with zeros.
	BorderConstant BorderPad = iota
	// BorderReplicate repeats the closest edge pixel.
	BorderReplicate
	// BorderReflect mirrors the image about its edge, without repeating the edge pixel.
	BorderReflect
)

// PaddingGray returns a copy of img with pad.X columns added on the left and right and pad.Y rows
// added on the top and bottom, filled according to border. The result's bounds start at (0, 0).
func PaddingGray(img *image.Gray, pad image.Point, border BorderPad) (*image.Gray, error) {
	if pad.X < 0 || pad.Y < 0 {
		return nil, errors.Errorf("padding must be non-negative, got %v", pad)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, errors.New("cannot pad an empty image")
	}
	if border == BorderReflect && (pad.X >= w || pad.Y >= h) {
		return nil, errors.Errorf("reflect padding %v must be smaller than the image size %dx%d", pad, w, h)
	}

	padded := image.NewGray(image.Rect(0, 0, w+2*pad.X, h+2*pad.Y))
	for y := -pad.Y; y < h+pad.Y; y++ {
		srcY, ok := borderIndex(y, h, border)
		if !ok {
			continue
		}
		dst := padded.Pix[(y+pad.Y)*padded.Stride:]
		src := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+srcY):]
		for x := -pad.X; x < w+pad.X; x++ {
			srcX, ok := borderIndex(x, w, border)
			if !ok {
				continue
			}
			dst[x+pad.X] = src[srcX]
		}
	}
	return padded, nil
}

// borderIndex maps a coordinate that may lie outside [0, size) to the source coordinate to copy
// from. It returns false when the pixel keeps the constant (zero) value.
func borderIndex(i, size int, border BorderPad) (int, bool) {
	if i >= 0 && i < size {
		return i, true
	}
	switch border {
	case BorderReplicate:
		if i < 0 {
			return 0, true
		}
		return size - 1, true
	case BorderReflect:
		if i < 0 {
			return -i, true
		}
		return 2*(size-1) - i, true
	case BorderConstant:
		return 0, false
	default:
		return 0, false
	}
}

// NewPaddedGrayView pads img by pad pixels on every side and returns a view whose origin and
// declared size are those of img. Samplers reading up to pad pixels outside the
// declared bounds stay inside the buffer.
func NewPaddedGrayView(img *image.Gray, pad int, border BorderPad) (GrayView, error) {
	padded, err := PaddingGray(img, image.Point{pad, pad}, border)
	if err != nil {
		return GrayView{}, err
	}
	bounds := img.Bounds()
	return GrayView{
		Pix:    padded.Pix[padded.PixOffset(pad, pad):],
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Stride: padded.Stride,
	}, nil
}
