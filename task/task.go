//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package task makes thumbnail of the image read from the source and writes
// it to the sink.
package task

import (
	"context"
	"image"
	"log/slog"

	"github.com/fogfish/faults"
	"github.com/fogfish/thumbnail"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/filter"
	"github.com/fogfish/thumbnail/geometry"
	"github.com/fogfish/thumbnail/internal/codec"
	"golang.org/x/image/draw"
)

const (
	errSourceIO          = faults.Safe1[string]("failed to read image (%s)")
	errConsumed          = faults.Safe1[string]("stream is already consumed (%s)")
	errSinkIO            = faults.Safe1[string]("failed to write thumbnail (%s)")
	errDestinationExists = faults.Safe1[string]("destination exists (%s)")
	errOutputFormat      = faults.Safe1[string]("output format is not supported (%s)")
	errNoDestination     = faults.Safe1[string]("no destination for (%s)")
	errMissingTask       = faults.Type("task is not defined")
)

// Task makes thumbnail
type Task struct {
	Parameter *thumbnail.Parameter
	Source    Source
	Sink      Sink
}

func New(param *thumbnail.Parameter, source Source, sink Sink) *Task {
	return &Task{Parameter: param, Source: source, Sink: sink}
}

// Run the task: read, correct orientation, crop region, resize,
// apply filters and write.
func (t *Task) Run(ctx context.Context) error {
	if t.Parameter == nil || t.Source == nil || t.Sink == nil {
		return errMissingTask.With(errdefs.ErrInvalidArgument)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := t.Source.Read(ctx)
	if err != nil {
		return err
	}

	img := src.Image
	slog.Debug("making thumbnail",
		slog.String("source", t.Source.Name()),
		slog.String("format", src.Format),
		slog.Group("size", "x", img.Bounds().Dx(), "y", img.Bounds().Dy()),
	)

	if t.Parameter.UseOrientation() {
		if f, has := filter.ForOrientation(src.Orientation); has {
			slog.Debug("correcting orientation", slog.Int("orientation", int(src.Orientation)))
			img = f.Apply(img)
		}
	}

	if region, has := t.Parameter.Region(); has {
		rect, err := region.Calculate(geometry.DimensionOf(img))
		if err != nil {
			return err
		}

		slog.Debug("cropping region",
			slog.Group("min", "x", rect.Min.X, "y", rect.Min.Y),
			slog.Group("max", "x", rect.Max.X, "y", rect.Max.Y),
		)
		img = crop(img, rect)
	}

	img, err = t.Parameter.Maker().Make(img)
	if err != nil {
		return err
	}

	img = t.Parameter.Filters().Apply(img)

	format, err := t.outputFormat(src)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return t.Sink.Write(ctx, img, format, t.Parameter.Quality())
}

func (t *Task) outputFormat(src *Image) (string, error) {
	var format string

	switch t.Parameter.OutputFormat() {
	case thumbnail.FormatOriginal:
		format = src.Format
		if format == "" {
			format = t.Sink.PreferredFormat()
		}
	case thumbnail.FormatDetermine:
		format = t.Sink.PreferredFormat()
		if format == thumbnail.FormatOriginal {
			format = src.Format
		}
	default:
		format = t.Parameter.OutputFormat()
	}

	if !codec.Writable(format) {
		return "", errOutputFormat.With(errdefs.ErrUnsupportedFormat, format)
	}

	return codec.Normalize(format), nil
}

// crop copies region of image, rect is relative to the image origin.
func crop(img image.Image, rect image.Rectangle) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), img, rect.Min.Add(img.Bounds().Min), draw.Src)
	return dst
}
