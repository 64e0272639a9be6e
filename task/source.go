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
	"image"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"sync"

	"github.com/fogfish/gurl/v2/http"
	ƒ "github.com/fogfish/gurl/v2/http/recv"
	ø "github.com/fogfish/gurl/v2/http/send"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/filter"
	"github.com/fogfish/thumbnail/internal/codec"
)

// Image read from the source
type Image struct {
	image.Image

	// Format of source encoding, empty if unknown
	Format string

	// Orientation of the source, normal if unknown
	Orientation filter.Orientation
}

// Source of images
type Source interface {
	Name() string
	Read(context.Context) (*Image, error)
}

func decode(r io.Reader) (*Image, error) {
	media, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}

	return &Image{
		Image:       media.Image,
		Format:      media.Format,
		Orientation: media.Orientation,
	}, nil
}

//------------------------------------------------------------------------------

// FileSource reads image from local file
type FileSource string

func (s FileSource) Name() string { return string(s) }

func (s FileSource) Read(context.Context) (*Image, error) {
	fd, err := os.Open(string(s))
	if err != nil {
		return nil, errSourceIO.With(errdefs.Wrap(errdefs.ErrIO, err), string(s))
	}
	defer fd.Close()

	return decode(fd)
}

//------------------------------------------------------------------------------

// ReaderSource reads image from the stream once
type ReaderSource struct {
	name     string
	reader   io.Reader
	mu       sync.Mutex
	consumed bool
}

func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, reader: r}
}

func (s *ReaderSource) Name() string { return s.name }

// Read decodes the stream, the stream is read at most once.
func (s *ReaderSource) Read(context.Context) (*Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumed {
		return nil, errConsumed.With(errdefs.ErrInvalidState, s.name)
	}
	s.consumed = true

	return decode(s.reader)
}

//------------------------------------------------------------------------------

// FSSource reads image from the file system (e.g. S3 bucket)
type FSSource struct {
	fsys fs.FS
	path string
}

func NewFSSource(fsys fs.FS, path string) *FSSource {
	return &FSSource{fsys: fsys, path: path}
}

func (s *FSSource) Name() string { return s.path }

func (s *FSSource) Read(context.Context) (*Image, error) {
	slog.Debug("getting image", slog.String("key", s.path))

	fd, err := s.fsys.Open(s.path)
	if err != nil {
		return nil, errSourceIO.With(errdefs.Wrap(errdefs.ErrIO, err), s.path)
	}
	defer fd.Close()

	return decode(fd)
}

//------------------------------------------------------------------------------

// URLSource downloads image. The format is derived from the url path,
// EXIF metadata is not available.
type URLSource struct {
	http.Stack
	url string
}

// NewURLSource creates source with the default HTTP stack if stack is nil
func NewURLSource(stack http.Stack, url string) *URLSource {
	if stack == nil {
		stack = NewHTTPStack()
	}

	return &URLSource{Stack: stack, url: url}
}

// NewHTTPStack defines HTTP client to download images
func NewHTTPStack() http.Stack {
	client := http.Client()
	client.CheckRedirect = nil
	return http.New(http.WithClient(client))
}

func (s *URLSource) Name() string { return s.url }

func (s *URLSource) Read(ctx context.Context) (*Image, error) {
	slog.Debug("downloading image", slog.String("url", s.url))

	img, err := http.IO[image.Image](s.WithContext(ctx),
		http.GET(
			ø.URI(s.url),
			ø.Accept.Set("image/*"),
			ƒ.Status.OK,
		),
	)
	if err != nil {
		return nil, errSourceIO.With(errdefs.Wrap(errdefs.ErrIO, err), s.url)
	}

	format := ""
	if u, err := url.Parse(s.url); err == nil && codec.Readable(codec.FormatOf(path.Base(u.Path))) {
		format = codec.FormatOf(path.Base(u.Path))
	}

	return &Image{
		Image:       *img,
		Format:      format,
		Orientation: filter.OrientationNormal,
	}, nil
}

//------------------------------------------------------------------------------

// ImageSource is in-memory image
type ImageSource struct {
	name   string
	image  image.Image
	format string
}

// NewImageSource creates source of image, the format is optional.
func NewImageSource(name string, img image.Image, format string) *ImageSource {
	return &ImageSource{name: name, image: img, format: codec.Normalize(format)}
}

func (s *ImageSource) Name() string { return s.name }

func (s *ImageSource) Read(context.Context) (*Image, error) {
	if s.image == nil {
		return nil, errSourceIO.With(errdefs.ErrInvalidArgument, s.name)
	}

	return &Image{
		Image:       s.image,
		Format:      s.format,
		Orientation: filter.OrientationNormal,
	}, nil
}
