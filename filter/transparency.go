//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package filter

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/fogfish/thumbnail/errdefs"
)

// Transparency multiplies opacity of every pixel by alpha.
type Transparency struct{ alpha float64 }

func NewTransparency(alpha float64) (*Transparency, error) {
	if alpha < 0 || alpha > 1 {
		return nil, errInvalidAlpha.With(errdefs.ErrInvalidArgument, fmt.Sprintf("%g", alpha))
	}

	return &Transparency{alpha: alpha}, nil
}

// Pixels are alpha-premultiplied, so every channel is scaled.
func (t *Transparency) Apply(img image.Image) image.Image {
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		return color.RGBA{
			R: t.scale(c.R),
			G: t.scale(c.G),
			B: t.scale(c.B),
			A: t.scale(c.A),
		}
	})
}

func (t *Transparency) scale(x uint8) uint8 {
	return uint8(float64(x)*t.alpha + 0.5)
}
