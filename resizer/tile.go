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
	"math"

	"github.com/fogfish/thumbnail/geometry"
)

// TileSize is the maximum side of the tile processed at once.
const TileSize = 512

type tile struct{ size int }

func (tile) String() string { return "tile" }

// Resize splits the source into tiles and resamples each of them into the
// proportional rectangle of the target. Edges of target rectangles are
// computed from the source edges, the last row and column end exactly at the
// target bounds, so rounding never drops or duplicates pixels.
func (t tile) Resize(src image.Image, dst geometry.Dimension) image.Image {
	img := image.NewRGBA(dst.Rect())
	sb := src.Bounds()

	if withinFactorTwo(sb, dst) {
		scale(img, img.Bounds(), src, sb)
		return img
	}

	sw, sh := sb.Dx(), sb.Dy()
	tw, th := min(sw, t.size), min(sh, t.size)
	sx := float64(dst.Width) / float64(sw)
	sy := float64(dst.Height) / float64(sh)

	for y := 0; y < sh; y += th {
		y0, y1 := edge(y, sy, sh, dst.Height), edge(y+th, sy, sh, dst.Height)
		if y0 == y1 {
			continue
		}

		for x := 0; x < sw; x += tw {
			x0, x1 := edge(x, sx, sw, dst.Width), edge(x+tw, sx, sw, dst.Width)
			if x0 == x1 {
				continue
			}

			sr := image.Rect(x, y, min(x+tw, sw), min(y+th, sh)).Add(sb.Min)
			scale(img, image.Rect(x0, y0, x1, y1), src, sr)
		}
	}

	return img
}

// edge maps source coordinate to the target one
func edge(at int, factor float64, source, target int) int {
	if at >= source {
		return target
	}

	return min(int(math.Round(float64(at)*factor)), target)
}
