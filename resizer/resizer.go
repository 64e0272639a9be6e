//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package resizer implements resampling strategies and the policy to choose
// one for the given scale ratio.
package resizer

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/fogfish/faults"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/geometry"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

const errUnknownResizer = faults.Safe1[string]("unknown resizer (%s)")

// Resizer resamples the source image into a new image of the given size.
// The source image is never modified.
type Resizer interface {
	Resize(src image.Image, dst geometry.Dimension) image.Image
}

var (
	// Null copies pixels without resampling.
	Null Resizer = null{}

	// Bilinear is a single resampling pass with a linear kernel.
	Bilinear Resizer = &direct{name: "bilinear", filter: transform.Linear}

	// Bicubic is a single resampling pass with Catmull-Rom kernel.
	Bicubic Resizer = &direct{name: "bicubic", filter: transform.CatmullRom}

	// Lanczos is a single resampling pass with Lanczos3 kernel.
	Lanczos Resizer = lanczos{}

	// Progressive resamples with repeated halving of bilinear passes.
	Progressive Resizer = progressive{}

	// Tile resamples large downscales tile by tile.
	Tile Resizer = tile{size: TileSize}
)

var resizers = map[string]Resizer{
	"null":        Null,
	"bilinear":    Bilinear,
	"bicubic":     Bicubic,
	"lanczos":     Lanczos,
	"progressive": Progressive,
	"tile":        Tile,
}

// ByName resolves resizer from its name
func ByName(name string) (Resizer, error) {
	r, has := resizers[name]
	if !has {
		return nil, errUnknownResizer.With(errdefs.ErrInvalidArgument, name)
	}

	return r, nil
}

//------------------------------------------------------------------------------

type null struct{}

// Copies the overlapping top-left rectangle, the rest of destination is blank.
func (null) Resize(src image.Image, dst geometry.Dimension) image.Image {
	img := image.NewRGBA(dst.Rect())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

func (null) String() string { return "null" }

//------------------------------------------------------------------------------

type direct struct {
	name   string
	filter transform.ResampleFilter
}

func (r *direct) Resize(src image.Image, dst geometry.Dimension) image.Image {
	return transform.Resize(src, dst.Width, dst.Height, r.filter)
}

func (r *direct) String() string { return r.name }

//------------------------------------------------------------------------------

type lanczos struct{}

func (lanczos) Resize(src image.Image, dst geometry.Dimension) image.Image {
	return resize.Resize(uint(dst.Width), uint(dst.Height), src, resize.Lanczos3)
}

func (lanczos) String() string { return "lanczos" }

//------------------------------------------------------------------------------

// withinFactorTwo is true if the target is at least half of the source in
// both axes, a single resampling pass is enough.
func withinFactorTwo(src image.Rectangle, dst geometry.Dimension) bool {
	return dst.Width*2 >= src.Dx() && dst.Height*2 >= src.Dy()
}

// scale draws src into the rectangle of dst using bilinear interpolation
func scale(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle) {
	draw.BiLinear.Scale(dst, dr, src, sr, draw.Src, nil)
}
