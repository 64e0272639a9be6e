//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package codec decodes and encodes raster images, it is the only place
// aware of the image formats.
package codec

import (
	"path/filepath"
	"strings"

	"github.com/fogfish/faults"
)

const (
	errCodecIO           = faults.Type("codec I/O error")
	errCodecNotSupported = faults.Safe1[string]("not supported (%s)")
)

// Formats known to the codec
const (
	JPEG = "jpeg"
	PNG  = "png"
	GIF  = "gif"
	BMP  = "bmp"
	TIFF = "tiff"
	WEBP = "webp"
)

// JPEG quality used when the quality is not defined, 93% is optimal.
const DefaultQuality = 93

var aliases = map[string]string{
	"jpg":  JPEG,
	"jpe":  JPEG,
	"jpeg": JPEG,
	"png":  PNG,
	"gif":  GIF,
	"bmp":  BMP,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WEBP,
}

var (
	decoders = map[string]bool{JPEG: true, PNG: true, GIF: true, BMP: true, TIFF: true, WEBP: true}
	encoders = map[string]bool{JPEG: true, PNG: true, GIF: true, BMP: true, TIFF: true}
)

var contentTypes = map[string]string{
	JPEG: "image/jpeg",
	PNG:  "image/png",
	GIF:  "image/gif",
	BMP:  "image/bmp",
	TIFF: "image/tiff",
	WEBP: "image/webp",
}

// Normalize format name (e.g. JPG -> jpeg), unknown names are lower cased.
func Normalize(format string) string {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if alias, has := aliases[f]; has {
		return alias
	}
	return f
}

// FormatOf file from its extension, empty string if there is no extension.
func FormatOf(path string) string {
	return Normalize(filepath.Ext(path))
}

// Extension of the file for the format
func Extension(format string) string {
	switch f := Normalize(format); f {
	case JPEG:
		return "jpg"
	default:
		return f
	}
}

// ContentType of the format
func ContentType(format string) string {
	if ct, has := contentTypes[Normalize(format)]; has {
		return ct
	}
	return "application/octet-stream"
}

// Readable is true if the format can be decoded
func Readable(format string) bool { return decoders[Normalize(format)] }

// Writable is true if the format can be encoded
func Writable(format string) bool { return encoders[Normalize(format)] }

// SameFormat compares format names
func SameFormat(a, b string) bool { return Normalize(a) == Normalize(b) }
