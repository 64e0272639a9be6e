//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package maker

import (
	"fmt"
	"image"
	"math"

	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/geometry"
)

// Scaled makes thumbnails by scaling factor along each axis.
type Scaled struct {
	sx, sy float64
	opts   options
}

var _ Maker = (*Scaled)(nil)

// NewScaled creates maker for width and height factors. Only the resizer
// factory option is applicable.
func NewScaled(sx, sy float64, opts ...Option) (*Scaled, error) {
	if !validFactor(sx) || !validFactor(sy) {
		return nil, errInvalidScale.With(errdefs.ErrInvalidArgument, fmt.Sprintf("%g, %g", sx, sy))
	}

	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	if o.assigned&(optKeepAspectRatio|optFitWithin) != 0 {
		return nil, errOptionScaled.With(errdefs.ErrInvalidState, "aspect ratio")
	}

	return &Scaled{sx: sx, sy: sy, opts: o}, nil
}

// NewUniformScaled creates maker that keeps aspect ratio
func NewUniformScaled(scale float64, opts ...Option) (*Scaled, error) {
	return NewScaled(scale, scale, opts...)
}

func validFactor(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Factors of scaling
func (m *Scaled) Factors() (float64, float64) { return m.sx, m.sy }

func (m *Scaled) Size(src geometry.Dimension) (geometry.Dimension, error) {
	if err := validSource(src); err != nil {
		return geometry.Dimension{}, err
	}

	return geometry.Dimension{
		Width:  round(float64(src.Width) * m.sx),
		Height: round(float64(src.Height) * m.sy),
	}, nil
}

func (m *Scaled) Make(img image.Image) (image.Image, error) {
	return resample(m, m.opts.factory, img)
}
