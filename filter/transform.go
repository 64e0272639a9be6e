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
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Flip mirrors the image
type Flip int

const (
	Horizontal Flip = iota
	Vertical
)

func (f Flip) Apply(img image.Image) image.Image {
	switch f {
	case Vertical:
		return transform.FlipV(rebase(img))
	default:
		return transform.FlipH(rebase(img))
	}
}

// Rotation turns image by the angle in degrees, positive angle is clockwise.
// Bounds of image are resized to fit the rotated one.
type Rotation float64

const (
	Left90    Rotation = -90
	Right90   Rotation = 90
	Rotate180 Rotation = 180
)

func (r Rotation) Apply(img image.Image) image.Image {
	angle := math.Mod(float64(r), 360)
	if angle < 0 {
		angle += 360
	}

	switch angle {
	case 0:
		return img
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	default:
		return transform.Rotate(rebase(img), angle, &transform.RotationOptions{ResizeBounds: true})
	}
}
