//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package codec

import (
	"image"
	"image/gif"
	"io"
	"log/slog"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/fogfish/thumbnail/errdefs"
	"golang.org/x/image/tiff"
)

// Encode image into the format. Quality is used by lossy formats, zero
// means DefaultQuality.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	encoder, err := encoderOf(format, quality)
	if err != nil {
		return err
	}

	slog.Debug("encoding image",
		slog.String("format", Normalize(format)),
		slog.Group("source", "x", img.Bounds().Dx(), "y", img.Bounds().Dy()),
	)

	if err := encoder(w, img); err != nil {
		return errCodecIO.With(errdefs.Wrap(errdefs.ErrIO, err))
	}

	return nil
}

func encoderOf(format string, quality int) (imgio.Encoder, error) {
	if quality <= 0 {
		quality = DefaultQuality
	}

	switch Normalize(format) {
	case JPEG:
		return imgio.JPEGEncoder(quality), nil
	case PNG:
		return imgio.PNGEncoder(), nil
	case BMP:
		return imgio.BMPEncoder(), nil
	case GIF:
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	case TIFF:
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, errCodecNotSupported.With(errdefs.ErrUnsupportedFormat, format)
	}
}
