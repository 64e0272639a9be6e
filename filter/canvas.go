//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package filter

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogfish/faults"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/geometry"
)

const (
	errInvalidCanvas = faults.Safe1[string]("invalid canvas (%s)")
	errInvalidAlpha  = faults.Safe1[string]("alpha is out of range [0, 1] (%s)")
	errMissingPos    = faults.Type("position is not defined")
)

// Canvas places image on the canvas of the given size. Image bigger than
// canvas is cropped if Crop is enabled, otherwise canvas grows to fit it.
type Canvas struct {
	size     geometry.Dimension
	position geometry.Position
	crop     bool
	fill     color.Color
}

// NewCanvas creates canvas filter. Nil fill color means black for images
// without alpha channel and transparent otherwise.
func NewCanvas(width, height int, position geometry.Position, crop bool, fill color.Color) (*Canvas, error) {
	size := geometry.Dimension{Width: width, Height: height}
	if !size.Valid() {
		return nil, errInvalidCanvas.With(errdefs.ErrInvalidArgument, size.String())
	}

	if position == nil {
		return nil, errMissingPos.With(errdefs.ErrInvalidArgument)
	}

	return &Canvas{size: size, position: position, crop: crop, fill: fill}, nil
}

func (c *Canvas) Apply(img image.Image) image.Image {
	inner := geometry.DimensionOf(img)

	outer := c.size
	if !c.crop {
		outer.Width = max(outer.Width, inner.Width)
		outer.Height = max(outer.Height, inner.Height)
	}

	fill := c.fill
	if fill == nil {
		fill = color.Transparent
		if opaque(img) {
			fill = color.Black
		}
	}

	at := c.position.Calculate(outer, inner, geometry.Insets{})
	canvas := imaging.New(outer.Width, outer.Height, fill)
	return imaging.Overlay(canvas, img, at, 1.0)
}
