//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package maker_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/geometry"
	"github.com/fogfish/thumbnail/maker"
	"github.com/fogfish/thumbnail/resizer"
)

func at(w, h int) geometry.Dimension { return geometry.Dimension{Width: w, Height: h} }

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestFixedSize(t *testing.T) {
	t.Run("ExactBox", func(t *testing.T) {
		m, err := maker.NewFixedSize(100, 50, maker.KeepAspectRatio(false))
		it.Then(t).Should(it.Nil(err))

		for _, src := range []geometry.Dimension{at(200, 200), at(10, 1000), at(1, 1)} {
			size, err := m.Size(src)
			it.Then(t).Should(
				it.Nil(err),
				it.Equal(size, at(100, 50)),
			)
		}
	})

	t.Run("FitWithin", func(t *testing.T) {
		m, err := maker.NewFixedSize(10, 10)
		it.Then(t).Should(it.Nil(err))

		for src, expect := range map[geometry.Dimension]geometry.Dimension{
			at(100, 4):   at(10, 1),
			at(4, 100):   at(1, 10),
			at(99, 100):  at(10, 10),
			at(200, 100): at(10, 5),
			at(5, 5):     at(10, 10),
			at(1000, 1):  at(10, 1),
		} {
			size, err := m.Size(src)
			it.Then(t).Should(
				it.Nil(err),
				it.Equal(size, expect),
			)
		}
	})

	t.Run("FitsBox", func(t *testing.T) {
		for _, box := range []geometry.Dimension{at(10, 10), at(300, 300), at(64, 48), at(7, 500)} {
			m, err := maker.NewFixedSize(box.Width, box.Height)
			it.Then(t).Should(
				it.Nil(err),
				it.Equal(m.Box(), box),
			)

			for w := 1; w <= 5000; w += 379 {
				for h := 1; h <= 15000; h += 1171 {
					size, err := m.Size(at(w, h))
					it.Then(t).Should(
						it.Nil(err),
						it.True(size.Valid()),
						it.True(size.Fits(m.Box())),
						it.True(size.Width == box.Width || size.Height == box.Height),
					)
				}
			}
		}
	})

	t.Run("Cover", func(t *testing.T) {
		m, err := maker.NewFixedSize(100, 50, maker.FitWithin(false))
		it.Then(t).Should(it.Nil(err))

		size, err := m.Size(at(200, 200))
		it.Then(t).Should(
			it.Nil(err),
			it.Equal(size, at(100, 100)),
		)
	})

	t.Run("InvalidSize", func(t *testing.T) {
		for _, x := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -5}} {
			_, err := maker.NewFixedSize(x[0], x[1])
			it.Then(t).Should(
				it.True(errors.Is(err, errdefs.ErrInvalidArgument)),
			)
		}
	})

	t.Run("OptionTwice", func(t *testing.T) {
		for _, opts := range [][]maker.Option{
			{maker.KeepAspectRatio(true), maker.KeepAspectRatio(false)},
			{maker.FitWithin(true), maker.FitWithin(true)},
			{maker.WithResizerFactory(resizer.Default), maker.WithResizerFactory(resizer.Default)},
		} {
			_, err := maker.NewFixedSize(10, 10, opts...)
			it.Then(t).Should(
				it.True(errors.Is(err, errdefs.ErrInvalidState)),
			)
		}
	})

	t.Run("NilFactory", func(t *testing.T) {
		_, err := maker.NewFixedSize(10, 10, maker.WithResizerFactory(nil))
		it.Then(t).Should(
			it.True(errors.Is(err, errdefs.ErrInvalidArgument)),
		)
	})

	t.Run("InvalidSource", func(t *testing.T) {
		m, _ := maker.NewFixedSize(10, 10)
		_, err := m.Size(at(0, 10))
		it.Then(t).Should(
			it.True(errors.Is(err, errdefs.ErrInvalidArgument)),
		)
	})

	t.Run("Make", func(t *testing.T) {
		src := gradient(300, 200)
		pix := bytes.Clone(src.Pix)

		m, _ := maker.NewFixedSize(100, 100)
		img, err := m.Make(src)
		it.Then(t).Should(
			it.Nil(err),
			it.Equal(geometry.DimensionOf(img), at(100, 67)),
			it.True(bytes.Equal(src.Pix, pix)),
		)
	})
}

func TestScaled(t *testing.T) {
	t.Run("Factors", func(t *testing.T) {
		m, err := maker.NewScaled(0.6, 0.4)
		it.Then(t).Should(it.Nil(err))

		sx, sy := m.Factors()
		it.Then(t).Should(
			it.Equal(sx, 0.6),
			it.Equal(sy, 0.4),
		)

		size, err := m.Size(at(200, 200))
		it.Then(t).Should(
			it.Nil(err),
			it.Equal(size, at(120, 80)),
		)
	})

	t.Run("ClampToPixel", func(t *testing.T) {
		m, _ := maker.NewUniformScaled(0.01)
		size, err := m.Size(at(20, 300))
		it.Then(t).Should(
			it.Nil(err),
			it.Equal(size, at(1, 3)),
		)
	})

	t.Run("InvalidFactor", func(t *testing.T) {
		for _, x := range [][2]float64{{0, 1}, {1, 0}, {-0.5, 1}, {1, math.Inf(1)}, {math.NaN(), 1}} {
			_, err := maker.NewScaled(x[0], x[1])
			it.Then(t).Should(
				it.True(errors.Is(err, errdefs.ErrInvalidArgument)),
			)
		}
	})

	t.Run("NotApplicable", func(t *testing.T) {
		_, err := maker.NewUniformScaled(0.5, maker.FitWithin(false))
		it.Then(t).Should(
			it.True(errors.Is(err, errdefs.ErrInvalidState)),
		)
	})

	t.Run("SameAsFixed", func(t *testing.T) {
		src := gradient(200, 200)

		scaled, _ := maker.NewUniformScaled(0.5)
		a, err := scaled.Make(src)
		it.Then(t).Should(it.Nil(err))

		fixed, _ := maker.NewFixedSize(100, 100)
		b, err := fixed.Make(src)
		it.Then(t).Should(it.Nil(err))

		it.Then(t).Should(
			it.Equal(geometry.DimensionOf(a), at(100, 100)),
			it.True(bytes.Equal(a.(*image.RGBA).Pix, b.(*image.RGBA).Pix)),
		)
	})
}
