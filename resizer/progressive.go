//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package resizer

import (
	"image"

	"github.com/fogfish/thumbnail/geometry"
)

type progressive struct{}

func (progressive) String() string { return "progressive" }

// Resize begins with the largest power-of-two multiple of the target that is
// still below the source, then halves the image until the target is reached.
// Each step is within factor 2, so bilinear kernel does not skip pixels.
func (progressive) Resize(src image.Image, dst geometry.Dimension) image.Image {
	img := image.NewRGBA(dst.Rect())
	sb := src.Bounds()

	if withinFactorTwo(sb, dst) {
		scale(img, img.Bounds(), src, sb)
		return img
	}

	w, h := dst.Width, dst.Height
	for w < sb.Dx() && h < sb.Dy() {
		w *= 2
		h *= 2
	}
	w, h = max(w/2, dst.Width), max(h/2, dst.Height)

	step := image.NewRGBA(image.Rect(0, 0, w, h))
	scale(step, step.Bounds(), src, sb)

	for w >= dst.Width*2 && h >= dst.Height*2 {
		w, h = max(w/2, dst.Width), max(h/2, dst.Height)

		next := image.NewRGBA(image.Rect(0, 0, w, h))
		scale(next, next.Bounds(), step, step.Bounds())
		step = next
	}

	scale(img, img.Bounds(), step, step.Bounds())
	return img
}
