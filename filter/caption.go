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

	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/geometry"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Caption draws text over the image.
type Caption struct {
	text     string
	face     font.Face
	color    color.NRGBA
	position geometry.Position
	inset    int
}

// NewCaption creates caption filter. Nil face is the basic 7x13 font, nil
// color is white. Alpha is the opacity of the text in [0, 1].
func NewCaption(text string, face font.Face, c color.Color, alpha float64, position geometry.Position, inset int) (*Caption, error) {
	if alpha < 0 || alpha > 1 {
		return nil, errInvalidAlpha.With(errdefs.ErrInvalidArgument, fmt.Sprintf("%g", alpha))
	}

	if position == nil {
		return nil, errMissingPos.With(errdefs.ErrInvalidArgument)
	}

	if face == nil {
		face = basicfont.Face7x13
	}

	if c == nil {
		c = color.White
	}

	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	rgba.A = uint8(float64(rgba.A)*alpha + 0.5)

	return &Caption{
		text:     text,
		face:     face,
		color:    rgba,
		position: position,
		inset:    inset,
	}, nil
}

func (c *Caption) Apply(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	metrics := c.face.Metrics()
	text := geometry.Dimension{
		Width:  font.MeasureString(c.face, c.text).Ceil(),
		Height: (metrics.Ascent + metrics.Descent).Ceil(),
	}

	at := c.position.Calculate(
		geometry.DimensionOf(dst),
		text,
		geometry.Insets{Left: c.inset, Right: c.inset, Top: c.inset, Bottom: c.inset},
	)

	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.color),
		Face: c.face,
		Dot:  fixed.P(at.X, at.Y+metrics.Ascent.Ceil()),
	}
	drawer.DrawString(c.text)

	return dst
}
