//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package geometry

import (
	"image"
	"math"
	"strconv"

	"github.com/fogfish/thumbnail/errdefs"
)

// Size calculates the size of an object inside of an enclosing one.
type Size interface {
	Calculate(outer Dimension) (Dimension, error)
}

// AbsoluteSize is the fixed size regardless of the enclosing object
type AbsoluteSize Dimension

func (s AbsoluteSize) Calculate(Dimension) (Dimension, error) {
	return NewDimension(s.Width, s.Height)
}

// RelativeSize is a fraction (0, 1] of the enclosing object
type RelativeSize float64

func (s RelativeSize) Calculate(outer Dimension) (Dimension, error) {
	f := float64(s)
	if !(f > 0 && f <= 1) {
		return Dimension{}, errInvalidSize.With(errdefs.ErrInvalidArgument, strconv.FormatFloat(f, 'f', -1, 64))
	}

	return Dimension{
		Width:  int(math.Round(float64(outer.Width) * f)),
		Height: int(math.Round(float64(outer.Height) * f)),
	}, nil
}

// Region of the source image to be used for thumbnail.
type Region struct {
	Position Position
	Size     Size
}

// Calculate returns the region clamped to the image of given size
func (r Region) Calculate(outer Dimension) (image.Rectangle, error) {
	inner, err := r.Size.Calculate(outer)
	if err != nil {
		return image.Rectangle{}, err
	}

	p := r.Position.Calculate(outer, inner, Insets{})
	rect := image.Rectangle{Min: p, Max: p.Add(image.Point{X: inner.Width, Y: inner.Height})}
	rect = rect.Intersect(outer.Rect())
	if rect.Empty() {
		return image.Rectangle{}, errInvalidRegion.With(errdefs.ErrInvalidArgument, rect.String())
	}

	return rect, nil
}
