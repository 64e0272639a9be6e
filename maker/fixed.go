//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package maker

import (
	"image"
	"math"

	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/geometry"
)

// FixedSize makes thumbnails of the given width and height.
type FixedSize struct {
	size geometry.Dimension
	opts options
}

var _ Maker = (*FixedSize)(nil)

// NewFixedSize creates maker for the box of width x height pixels
func NewFixedSize(width, height int, opts ...Option) (*FixedSize, error) {
	size := geometry.Dimension{Width: width, Height: height}
	if !size.Valid() {
		return nil, errInvalidSize.With(errdefs.ErrInvalidArgument, size.String())
	}

	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	return &FixedSize{size: size, opts: o}, nil
}

// Box of the thumbnail
func (m *FixedSize) Box() geometry.Dimension { return m.size }

// Size of thumbnail made from the source of given size
func (m *FixedSize) Size(src geometry.Dimension) (geometry.Dimension, error) {
	if err := validSource(src); err != nil {
		return geometry.Dimension{}, err
	}

	if !m.opts.keepAspectRatio {
		return m.size, nil
	}

	sx := float64(m.size.Width) / float64(src.Width)
	sy := float64(m.size.Height) / float64(src.Height)

	scale := math.Max(sx, sy)
	if m.opts.fitWithin {
		scale = math.Min(sx, sy)
	}

	return geometry.Dimension{
		Width:  round(float64(src.Width) * scale),
		Height: round(float64(src.Height) * scale),
	}, nil
}

func (m *FixedSize) Make(img image.Image) (image.Image, error) {
	return resample(m, m.opts.factory, img)
}
