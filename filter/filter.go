//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package filter implements image transformations applied to thumbnails
// after resizing, and the orientation correction applied before.
//
// Filters never modify the input image, the result is always a new image
// or the input itself when the filter is a no-op.
package filter

import (
	"image"
	"slices"

	"golang.org/x/image/draw"
)

// Filter transforms image
type Filter interface {
	Apply(image.Image) image.Image
}

// Func adapts function to Filter
type Func func(image.Image) image.Image

func (f Func) Apply(img image.Image) image.Image { return f(img) }

// Pipeline is an ordered sequence of filters.
type Pipeline []Filter

// Chain filters into pipeline
func Chain(filters ...Filter) Pipeline { return slices.Clone(Pipeline(filters)) }

// Apply filters in the order of the pipeline
func (p Pipeline) Apply(img image.Image) image.Image {
	for _, f := range p {
		img = f.Apply(img)
	}
	return img
}

// Prepend returns new pipeline with filters before existing ones
func (p Pipeline) Prepend(filters ...Filter) Pipeline {
	return slices.Concat(Pipeline(filters), p)
}

// Append returns new pipeline with filters after existing ones
func (p Pipeline) Append(filters ...Filter) Pipeline {
	return slices.Concat(p, Pipeline(filters))
}

// rebase copies image to the zero origin if needed
func rebase(img image.Image) image.Image {
	b := img.Bounds()
	if b.Min == (image.Point{}) {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// opaque images has no alpha channel
func opaque(img image.Image) bool {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return true
	default:
		return false
	}
}
