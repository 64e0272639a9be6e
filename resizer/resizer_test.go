//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package resizer_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/geometry"
	"github.com/fogfish/thumbnail/resizer"
)

// solid is lazy image, pixels are never allocated
type solid struct {
	w, h int
	c    color.RGBA
}

func (s solid) ColorModel() color.Model { return color.RGBAModel }
func (s solid) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }
func (s solid) At(x, y int) color.Color { return s.c }

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func filled(img image.Image, c color.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) != c {
				return false
			}
		}
	}
	return true
}

var red = color.RGBA{R: 200, G: 10, B: 10, A: 255}

func TestResizers(t *testing.T) {
	dst := geometry.Dimension{Width: 100, Height: 50}

	for _, name := range []string{"null", "bilinear", "bicubic", "lanczos", "progressive", "tile"} {
		t.Run(name, func(t *testing.T) {
			src := gradient(300, 200)
			pix := bytes.Clone(src.Pix)

			r, err := resizer.ByName(name)
			it.Then(t).Should(it.Nil(err))

			img := r.Resize(src, dst)
			it.Then(t).Should(
				it.Equal(geometry.DimensionOf(img), dst),
				it.True(bytes.Equal(src.Pix, pix)),
			)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := resizer.ByName("nearest")
		it.Then(t).Should(
			it.True(errors.Is(err, errdefs.ErrInvalidArgument)),
		)
	})
}

func TestNull(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		dst := geometry.Dimension{Width: 10, Height: 10}
		a := resizer.Null.Resize(gradient(30, 20), dst).(*image.RGBA)
		b := resizer.Null.Resize(a, dst).(*image.RGBA)

		it.Then(t).Should(
			it.True(bytes.Equal(a.Pix, b.Pix)),
		)
	})

	t.Run("TopLeft", func(t *testing.T) {
		src := gradient(30, 20)
		img := resizer.Null.Resize(src, geometry.Dimension{Width: 40, Height: 40})

		it.Then(t).Should(
			it.Equal(color.RGBAModel.Convert(img.At(5, 7)), color.Color(src.RGBAAt(5, 7))),
			it.Equal(color.RGBAModel.Convert(img.At(35, 35)), color.Color(color.RGBA{})),
		)
	})
}

// smooth is gradient without wrap-around, any kernel samples it alike
func smooth(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

// maxDiff is the largest per-channel difference of two images
func maxDiff(a, b image.Image) int {
	diff := 0
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ca := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			cb := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			for _, d := range []int{
				int(ca.R) - int(cb.R),
				int(ca.G) - int(cb.G),
				int(ca.B) - int(cb.B),
				int(ca.A) - int(cb.A),
			} {
				diff = max(diff, d, -d)
			}
		}
	}
	return diff
}

func TestAboveThreshold(t *testing.T) {
	for _, tc := range []struct {
		src image.Rectangle
		dst geometry.Dimension
	}{
		{image.Rect(0, 0, 201, 201), geometry.Dimension{Width: 100, Height: 100}},
		{image.Rect(0, 0, 1300, 1100), geometry.Dimension{Width: 97, Height: 83}},
	} {
		src := smooth(tc.src.Dx(), tc.src.Dy())
		expect := resizer.Bilinear.Resize(src, tc.dst)

		for name, r := range map[string]resizer.Resizer{
			"progressive": resizer.Progressive,
			"tile":        resizer.Tile,
		} {
			t.Run(name+" "+tc.dst.String(), func(t *testing.T) {
				img := r.Resize(src, tc.dst)
				it.Then(t).Should(
					it.Equal(geometry.DimensionOf(img), tc.dst),
					it.True(maxDiff(expect, img) < 5),
				)
			})
		}
	}
}

func TestProgressive(t *testing.T) {
	t.Run("SinglePassWithinFactorTwo", func(t *testing.T) {
		src := gradient(200, 200)
		dst := geometry.Dimension{Width: 100, Height: 120}

		a := resizer.Progressive.Resize(src, dst).(*image.RGBA)
		b := resizer.Tile.Resize(src, dst).(*image.RGBA)

		it.Then(t).Should(
			it.True(bytes.Equal(a.Pix, b.Pix)),
		)
	})

	t.Run("Halving", func(t *testing.T) {
		dst := geometry.Dimension{Width: 100, Height: 50}
		img := resizer.Progressive.Resize(solid{w: 2000, h: 1100, c: red}, dst)

		it.Then(t).Should(
			it.Equal(geometry.DimensionOf(img), dst),
			it.True(filled(img, red)),
		)
	})

	t.Run("MixedAxes", func(t *testing.T) {
		dst := geometry.Dimension{Width: 10, Height: 500}
		img := resizer.Progressive.Resize(solid{w: 1000, h: 100, c: red}, dst)

		it.Then(t).Should(
			it.Equal(geometry.DimensionOf(img), dst),
			it.True(filled(img, red)),
		)
	})
}

func TestTile(t *testing.T) {
	t.Run("NonMultipleOfTile", func(t *testing.T) {
		for _, dst := range []geometry.Dimension{
			{Width: 97, Height: 83},
			{Width: 13, Height: 7},
			{Width: 1, Height: 1},
			{Width: 600, Height: 1},
		} {
			img := resizer.Tile.Resize(solid{w: 1300, h: 1100, c: red}, dst)

			it.Then(t).Should(
				it.Equal(geometry.DimensionOf(img), dst),
				it.True(filled(img, red)),
			)
		}
	})

	t.Run("VeryLarge", func(t *testing.T) {
		dst := geometry.Dimension{Width: 100, Height: 300}
		img := resizer.Tile.Resize(solid{w: 5000, h: 15000, c: red}, dst)

		it.Then(t).Should(
			it.Equal(geometry.DimensionOf(img), dst),
			it.True(filled(img, red)),
		)
	})

	t.Run("NonZeroOrigin", func(t *testing.T) {
		src := gradient(1200, 1200).SubImage(image.Rect(100, 100, 1200, 1200))
		dst := geometry.Dimension{Width: 50, Height: 50}
		img := resizer.Tile.Resize(src, dst)

		it.Then(t).Should(
			it.Equal(geometry.DimensionOf(img), dst),
		)
	})
}

func TestFactory(t *testing.T) {
	at := func(w, h int) geometry.Dimension { return geometry.Dimension{Width: w, Height: h} }

	t.Run("Default", func(t *testing.T) {
		for _, tc := range []struct {
			src, dst geometry.Dimension
			expect   resizer.Resizer
		}{
			{at(100, 100), at(100, 100), resizer.Null},
			{at(100, 100), at(200, 150), resizer.Bicubic},
			{at(100, 100), at(100, 150), resizer.Bicubic},
			{at(100, 100), at(60, 60), resizer.Bilinear},
			{at(100, 100), at(50, 50), resizer.Bilinear},
			{at(100, 100), at(49, 50), resizer.Tile},
			{at(100, 100), at(200, 10), resizer.Tile},
			{at(5000, 15000), at(100, 300), resizer.Tile},
		} {
			it.Then(t).Should(
				it.Equal(resizer.Default.Resizer(tc.src, tc.dst), tc.expect),
			)
		}
	})

	t.Run("DefaultProgressive", func(t *testing.T) {
		it.Then(t).Should(
			it.Equal(resizer.DefaultProgressive.Resizer(at(1000, 1000), at(10, 10)), resizer.Progressive),
			it.Equal(resizer.DefaultProgressive.Resizer(at(10, 10), at(10, 10)), resizer.Null),
		)
	})

	t.Run("Fixed", func(t *testing.T) {
		f := resizer.Fixed(resizer.Lanczos)
		it.Then(t).Should(
			it.Equal(f.Resizer(at(100, 100), at(10, 10)), resizer.Lanczos),
			it.Equal(f.Resizer(at(10, 10), at(100, 100)), resizer.Lanczos),
		)
	})
}
