//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package codec

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"

	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/filter"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Media is decoded image with attributes of its encoding
type Media struct {
	Image       image.Image
	Format      string
	Orientation filter.Orientation
}

// Decode image from the stream, the orientation is read from EXIF metadata
// if the format carries it.
func Decode(r io.Reader) (*Media, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errCodecIO.With(errdefs.Wrap(errdefs.ErrIO, err))
	}

	img, format, err := image.Decode(bytes.NewReader(buf))
	switch {
	case errors.Is(err, image.ErrFormat):
		return nil, errCodecNotSupported.With(errdefs.ErrUnsupportedFormat, "unknown image format")
	case err != nil:
		return nil, errCodecIO.With(errdefs.Wrap(errdefs.ErrIO, err))
	}

	orientation := filter.OrientationNormal
	if format == JPEG || format == TIFF {
		orientation = ReadOrientation(bytes.NewReader(buf))
	}

	slog.Debug("decoded image",
		slog.String("format", format),
		slog.Int("orientation", int(orientation)),
		slog.Group("source", "x", img.Bounds().Dx(), "y", img.Bounds().Dy()),
	)

	return &Media{
		Image:       img,
		Format:      format,
		Orientation: orientation,
	}, nil
}

// ReadOrientation from EXIF metadata, normal orientation if metadata is
// missing or corrupted.
func ReadOrientation(r io.Reader) filter.Orientation {
	x, err := exif.Decode(r)
	if err != nil {
		return filter.OrientationNormal
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return filter.OrientationNormal
	}

	val, err := tag.Int(0)
	if err != nil {
		return filter.OrientationNormal
	}

	o := filter.Orientation(val)
	if !o.Valid() {
		return filter.OrientationNormal
	}

	return o
}
