//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package maker computes the size of thumbnail and makes it.
package maker

import (
	"image"
	"log/slog"
	"math"

	"github.com/fogfish/faults"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/geometry"
	"github.com/fogfish/thumbnail/resizer"
)

const (
	errInvalidSize    = faults.Safe1[string]("invalid thumbnail size (%s)")
	errInvalidScale   = faults.Safe1[string]("invalid scaling factor (%s)")
	errInvalidSource  = faults.Safe1[string]("invalid source image (%s)")
	errOptionTwice    = faults.Safe1[string]("option is already set (%s)")
	errOptionScaled   = faults.Safe1[string]("option is not applicable to scaling (%s)")
	errMissingFactory = faults.Type("resizer factory is not defined")
)

// Maker computes the target size from the source one and resamples images
// to that size.
type Maker interface {
	Size(src geometry.Dimension) (geometry.Dimension, error)
	Make(img image.Image) (image.Image, error)
}

//------------------------------------------------------------------------------

const (
	optKeepAspectRatio = 1 << iota
	optFitWithin
	optResizerFactory
)

var optNames = map[int]string{
	optKeepAspectRatio: "keep aspect ratio",
	optFitWithin:       "fit within",
	optResizerFactory:  "resizer factory",
}

type options struct {
	keepAspectRatio bool
	fitWithin       bool
	factory         resizer.Factory
	assigned        int
}

func (opts *options) assign(opt int) error {
	if opts.assigned&opt != 0 {
		return errOptionTwice.With(errdefs.ErrInvalidState, optNames[opt])
	}
	opts.assigned |= opt
	return nil
}

// Option of maker. Every option is set at most once.
type Option func(*options) error

// KeepAspectRatio preserves the source ratio (enabled by default).
func KeepAspectRatio(keep bool) Option {
	return func(opts *options) error {
		if err := opts.assign(optKeepAspectRatio); err != nil {
			return err
		}
		opts.keepAspectRatio = keep
		return nil
	}
}

// FitWithin makes thumbnail within the box if enabled (default), otherwise
// thumbnail covers the box.
func FitWithin(fit bool) Option {
	return func(opts *options) error {
		if err := opts.assign(optFitWithin); err != nil {
			return err
		}
		opts.fitWithin = fit
		return nil
	}
}

// WithResizerFactory overrides resizer.Default policy
func WithResizerFactory(f resizer.Factory) Option {
	return func(opts *options) error {
		if err := opts.assign(optResizerFactory); err != nil {
			return err
		}
		if f == nil {
			return errMissingFactory.With(errdefs.ErrInvalidArgument)
		}
		opts.factory = f
		return nil
	}
}

func newOptions(opts []Option) (options, error) {
	o := options{
		keepAspectRatio: true,
		fitWithin:       true,
		factory:         resizer.Default,
	}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}

	return o, nil
}

//------------------------------------------------------------------------------

// round half-up, never below 1 pixel
func round(x float64) int {
	return max(int(math.Floor(x+0.5)), 1)
}

func resample(m Maker, factory resizer.Factory, img image.Image) (image.Image, error) {
	src := geometry.DimensionOf(img)
	dst, err := m.Size(src)
	if err != nil {
		return nil, err
	}

	r := factory.Resizer(src, dst)

	slog.Debug("resizing image",
		slog.Any("resizer", r),
		slog.Group("source", "x", src.Width, "y", src.Height),
		slog.Group("target", "x", dst.Width, "y", dst.Height),
	)

	return r.Resize(img, dst), nil
}

func validSource(src geometry.Dimension) error {
	if !src.Valid() {
		return errInvalidSource.With(errdefs.ErrInvalidArgument, src.String())
	}
	return nil
}
