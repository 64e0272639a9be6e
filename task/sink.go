//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package task

import (
	"context"
	"errors"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fogfish/thumbnail"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/internal/codec"
)

// Sink of thumbnails
type Sink interface {
	// Format preferred by destination. thumbnail.FormatOriginal means the
	// destination accepts the format of the source.
	PreferredFormat() string
	Write(ctx context.Context, img image.Image, format string, quality int) error
}

// Target is the path of file for the image format. Extension is appended
// if path has no extension of the format.
func Target(path string, format string) string {
	if format == "" || codec.SameFormat(format, codec.FormatOf(path)) {
		return path
	}

	return path + "." + codec.Extension(format)
}

//------------------------------------------------------------------------------

// FileSink writes thumbnail to local file. The image is encoded into the
// temporary file, which is renamed to destination on success.
type FileSink struct {
	path      string
	overwrite bool
}

func NewFileSink(path string, overwrite bool) *FileSink {
	return &FileSink{path: path, overwrite: overwrite}
}

// PreferredFormat is the file extension, empty if the path has none.
func (s *FileSink) PreferredFormat() string { return codec.FormatOf(s.path) }

func (s *FileSink) Write(_ context.Context, img image.Image, format string, quality int) error {
	target := Target(s.path, format)

	if !s.overwrite {
		_, err := os.Stat(target)
		switch {
		case err == nil:
			return errDestinationExists.With(errdefs.ErrDestinationExists, target)
		case !errors.Is(err, fs.ErrNotExist):
			return errSinkIO.With(errdefs.Wrap(errdefs.ErrIO, err), target)
		}
	}

	slog.Debug("write thumbnail",
		slog.String("path", target),
		slog.String("format", format),
		slog.Group("source", "x", img.Bounds().Dx(), "y", img.Bounds().Dy()),
	)

	fd, err := os.CreateTemp(filepath.Dir(target), ".thumbnail-*")
	if err != nil {
		return errSinkIO.With(errdefs.Wrap(errdefs.ErrIO, err), target)
	}
	defer os.Remove(fd.Name())

	if err := codec.Encode(fd, img, format, quality); err != nil {
		fd.Close()
		return err
	}

	if err := fd.Close(); err != nil {
		return errSinkIO.With(errdefs.Wrap(errdefs.ErrIO, err), target)
	}

	if err := os.Rename(fd.Name(), target); err != nil {
		return errSinkIO.With(errdefs.Wrap(errdefs.ErrIO, err), target)
	}

	return nil
}

//------------------------------------------------------------------------------

// WriterSink encodes thumbnail into the stream
type WriterSink struct {
	writer io.Writer
	format string
}

// NewWriterSink creates sink, the format is optional
func NewWriterSink(w io.Writer, format string) *WriterSink {
	return &WriterSink{writer: w, format: codec.Normalize(format)}
}

func (s *WriterSink) PreferredFormat() string {
	if s.format == "" {
		return thumbnail.FormatOriginal
	}
	return s.format
}

func (s *WriterSink) Write(_ context.Context, img image.Image, format string, quality int) error {
	return codec.Encode(s.writer, img, format, quality)
}

//------------------------------------------------------------------------------

// ImageSink keeps thumbnail in memory, it is not encoded.
type ImageSink struct {
	mu    sync.Mutex
	image image.Image
}

// PreferredFormat is nominal, lossless format
func (s *ImageSink) PreferredFormat() string { return codec.PNG }

func (s *ImageSink) Write(_ context.Context, img image.Image, _ string, _ int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.image = img
	return nil
}

// Image written to the sink, nil if nothing is written
func (s *ImageSink) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.image
}

//------------------------------------------------------------------------------

// CreateFS is file system that creates files (e.g. S3 bucket)
type CreateFS interface {
	Create(name string) (io.WriteCloser, error)
}

// CreateFunc adapts function to CreateFS
type CreateFunc func(name string) (io.WriteCloser, error)

func (f CreateFunc) Create(name string) (io.WriteCloser, error) { return f(name) }

// FSSink writes thumbnail to the file system
type FSSink struct {
	fsys CreateFS
	path string
}

func NewFSSink(fsys CreateFS, path string) *FSSink {
	return &FSSink{fsys: fsys, path: path}
}

func (s *FSSink) PreferredFormat() string { return codec.FormatOf(s.path) }

func (s *FSSink) Write(_ context.Context, img image.Image, format string, quality int) error {
	target := Target(s.path, format)

	slog.Debug("write thumbnail",
		slog.String("key", target),
		slog.String("format", format),
		slog.Group("source", "x", img.Bounds().Dx(), "y", img.Bounds().Dy()),
	)

	fd, err := s.fsys.Create(target)
	if err != nil {
		return errSinkIO.With(errdefs.Wrap(errdefs.ErrIO, err), target)
	}

	if err := codec.Encode(fd, img, format, quality); err != nil {
		fd.Close()
		return err
	}

	if err := fd.Close(); err != nil {
		return errSinkIO.With(errdefs.Wrap(errdefs.ErrIO, err), target)
	}

	return nil
}
