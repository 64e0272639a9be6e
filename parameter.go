//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package thumbnail defines parameters of thumbnail generation. The
// parameter is validated once, when it is built, and never changes after.
package thumbnail

import (
	"fmt"

	"github.com/fogfish/faults"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/filter"
	"github.com/fogfish/thumbnail/geometry"
	"github.com/fogfish/thumbnail/internal/codec"
	"github.com/fogfish/thumbnail/maker"
	"github.com/fogfish/thumbnail/resizer"
)

const (
	errOptionTwice   = faults.Safe1[string]("option is already set (%s)")
	errNoSizing      = faults.Type("neither size nor scale is defined")
	errBothSizing    = faults.Type("both size and scale are defined")
	errAspectOfScale = faults.Safe1[string]("option requires size (%s)")
	errQuality       = faults.Safe1[string]("quality is out of range [0, 100] (%s)")
	errFormat        = faults.Safe1[string]("output format (%s)")
	errNilOption     = faults.Safe1[string]("undefined value (%s)")
)

// Output format policies
const (
	// Format of the source image is used
	FormatOriginal = "original"

	// Format is determined by the destination (e.g. file extension)
	FormatDetermine = "determine"
)

// Parameter of thumbnail generation
type Parameter struct {
	size            geometry.Dimension
	scaleX, scaleY  float64
	keepAspectRatio bool
	fitWithin       bool
	region          *geometry.Region
	filters         filter.Pipeline
	factory         resizer.Factory
	format          string
	quality         int
	useOrientation  bool

	assigned map[string]struct{}
	maker    maker.Maker
}

// Option of Parameter, every option is set at most once.
type Option func(*Parameter) error

func (p *Parameter) assign(name string) error {
	if _, has := p.assigned[name]; has {
		return errOptionTwice.With(errdefs.ErrInvalidState, name)
	}
	p.assigned[name] = struct{}{}
	return nil
}

func (p *Parameter) has(name string) bool {
	_, has := p.assigned[name]
	return has
}

// WithSize of thumbnail box in pixels
func WithSize(width, height int) Option {
	return func(p *Parameter) error {
		if err := p.assign("size"); err != nil {
			return err
		}
		size, err := geometry.NewDimension(width, height)
		if err != nil {
			return err
		}
		p.size = size
		return nil
	}
}

// WithScale factors of thumbnail relative to the source
func WithScale(sx, sy float64) Option {
	return func(p *Parameter) error {
		if err := p.assign("scale"); err != nil {
			return err
		}
		p.scaleX, p.scaleY = sx, sy
		return nil
	}
}

// WithKeepAspectRatio (enabled by default) of the source. Requires size.
func WithKeepAspectRatio(keep bool) Option {
	return func(p *Parameter) error {
		if err := p.assign("keep aspect ratio"); err != nil {
			return err
		}
		p.keepAspectRatio = keep
		return nil
	}
}

// WithFitWithin (enabled by default) box, the thumbnail covers the box
// otherwise. Requires size.
func WithFitWithin(fit bool) Option {
	return func(p *Parameter) error {
		if err := p.assign("fit within"); err != nil {
			return err
		}
		p.fitWithin = fit
		return nil
	}
}

// WithRegion of the source used for the thumbnail
func WithRegion(region geometry.Region) Option {
	return func(p *Parameter) error {
		if err := p.assign("region"); err != nil {
			return err
		}
		if region.Position == nil || region.Size == nil {
			return errNilOption.With(errdefs.ErrInvalidArgument, "region")
		}
		p.region = &region
		return nil
	}
}

// WithFilters applied to the thumbnail after resize
func WithFilters(filters ...filter.Filter) Option {
	return func(p *Parameter) error {
		if err := p.assign("filters"); err != nil {
			return err
		}
		for _, f := range filters {
			if f == nil {
				return errNilOption.With(errdefs.ErrInvalidArgument, "filter")
			}
		}
		p.filters = filter.Chain(filters...)
		return nil
	}
}

// WithResizerFactory overrides resizer.Default
func WithResizerFactory(f resizer.Factory) Option {
	return func(p *Parameter) error {
		if err := p.assign("resizer factory"); err != nil {
			return err
		}
		if f == nil {
			return errNilOption.With(errdefs.ErrInvalidArgument, "resizer factory")
		}
		p.factory = f
		return nil
	}
}

// WithOutputFormat is FormatOriginal (default), FormatDetermine or the
// name of format (e.g. jpg, png).
func WithOutputFormat(format string) Option {
	return func(p *Parameter) error {
		if err := p.assign("output format"); err != nil {
			return err
		}

		switch format {
		case FormatOriginal, FormatDetermine:
			p.format = format
		default:
			if !codec.Writable(format) {
				return errFormat.With(errdefs.ErrUnsupportedFormat, format)
			}
			p.format = codec.Normalize(format)
		}
		return nil
	}
}

// WithQuality of lossy codecs in 1..100, zero is codec default.
func WithQuality(quality int) Option {
	return func(p *Parameter) error {
		if err := p.assign("quality"); err != nil {
			return err
		}
		if quality < 0 || quality > 100 {
			return errQuality.With(errdefs.ErrInvalidArgument, fmt.Sprintf("%d", quality))
		}
		p.quality = quality
		return nil
	}
}

// WithOrientation correction (enabled by default) using EXIF metadata
func WithOrientation(use bool) Option {
	return func(p *Parameter) error {
		if err := p.assign("orientation"); err != nil {
			return err
		}
		p.useOrientation = use
		return nil
	}
}

// New builds parameter, exactly one of WithSize or WithScale is required.
func New(opts ...Option) (*Parameter, error) {
	p := &Parameter{
		keepAspectRatio: true,
		fitWithin:       true,
		factory:         resizer.Default,
		format:          FormatOriginal,
		useOrientation:  true,
		assigned:        map[string]struct{}{},
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	withSize, withScale := p.has("size"), p.has("scale")
	switch {
	case !withSize && !withScale:
		return nil, errNoSizing.With(errdefs.ErrInvalidState)
	case withSize && withScale:
		return nil, errBothSizing.With(errdefs.ErrInvalidState)
	case withScale && p.has("keep aspect ratio"):
		return nil, errAspectOfScale.With(errdefs.ErrInvalidState, "keep aspect ratio")
	case withScale && p.has("fit within"):
		return nil, errAspectOfScale.With(errdefs.ErrInvalidState, "fit within")
	}

	var err error
	if withSize {
		p.maker, err = maker.NewFixedSize(p.size.Width, p.size.Height,
			maker.KeepAspectRatio(p.keepAspectRatio),
			maker.FitWithin(p.fitWithin),
			maker.WithResizerFactory(p.factory),
		)
	} else {
		p.maker, err = maker.NewScaled(p.scaleX, p.scaleY,
			maker.WithResizerFactory(p.factory),
		)
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Size of thumbnail, false if thumbnail is made by scaling
func (p *Parameter) Size() (geometry.Dimension, bool) { return p.size, p.has("size") }

// Scale factors of thumbnail, false if thumbnail is made of the fixed size
func (p *Parameter) Scale() (float64, float64, bool) { return p.scaleX, p.scaleY, p.has("scale") }

func (p *Parameter) KeepAspectRatio() bool { return p.keepAspectRatio }

func (p *Parameter) FitWithin() bool { return p.fitWithin }

// Region of the source, false if entire image is used
func (p *Parameter) Region() (geometry.Region, bool) {
	if p.region == nil {
		return geometry.Region{}, false
	}
	return *p.region, true
}

// Filters returns copy of the filter pipeline
func (p *Parameter) Filters() filter.Pipeline { return filter.Chain(p.filters...) }

func (p *Parameter) ResizerFactory() resizer.Factory { return p.factory }

func (p *Parameter) OutputFormat() string { return p.format }

func (p *Parameter) Quality() int { return p.quality }

func (p *Parameter) UseOrientation() bool { return p.useOrientation }

// Maker of thumbnails matching the sizing intent
func (p *Parameter) Maker() maker.Maker { return p.maker }
