//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package geometry defines sizes, anchors and regions used to place and crop
// images.
package geometry

import (
	"fmt"
	"image"

	"github.com/fogfish/faults"
	"github.com/fogfish/thumbnail/errdefs"
)

const (
	errInvalidDimension = faults.Safe1[string]("invalid dimension (%s)")
	errInvalidRegion    = faults.Safe1[string]("region is outside of image (%s)")
	errInvalidSize      = faults.Safe1[string]("invalid size (%s)")
)

// Dimension of raster image in pixels.
type Dimension struct {
	Width  int
	Height int
}

// NewDimension validates both sides are strictly positive
func NewDimension(width, height int) (Dimension, error) {
	d := Dimension{Width: width, Height: height}
	if !d.Valid() {
		return Dimension{}, errInvalidDimension.With(errdefs.ErrInvalidArgument, d.String())
	}

	return d, nil
}

// DimensionOf returns the size of the image
func DimensionOf(img image.Image) Dimension {
	b := img.Bounds()
	return Dimension{Width: b.Dx(), Height: b.Dy()}
}

func (d Dimension) Valid() bool { return d.Width > 0 && d.Height > 0 }

func (d Dimension) Rect() image.Rectangle { return image.Rect(0, 0, d.Width, d.Height) }

func (d Dimension) String() string { return fmt.Sprintf("%dx%d", d.Width, d.Height) }

// Fits checks that dimension does not exceed the box
func (d Dimension) Fits(box Dimension) bool {
	return d.Width <= box.Width && d.Height <= box.Height
}
