//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package inbox

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/fogfish/faults"
	"github.com/fogfish/gurl/v2/http"
	"github.com/fogfish/swarm"
	"github.com/fogfish/thumbnail"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/internal/codec"
	"github.com/fogfish/thumbnail/task"
	"golang.org/x/sync/errgroup"
)

const (
	errCodecIO           = faults.Type("codec I/O error")
	errCodecNotSupported = faults.Safe1[string]("not supported (%s)")
)

// Link to image, the inbox accepts json files with link instead of image
type Link struct {
	Url string `json:"url"`
}

// ThumbnailPublished is emitted when thumbnail is written to media store
type ThumbnailPublished struct {
	Source     string `json:"source"`
	Thumbnail  string `json:"thumbnail"`
	Resolution string `json:"resolution"`
}

// Publisher of events, nil disables events
type Publisher func(context.Context, ThumbnailPublished) error

type resolution struct {
	thumbnail.Resolution
	parameter *thumbnail.Parameter
}

// Codec makes thumbnails of the profile for every image in the inbox
type Codec struct {
	stack       http.Stack
	root        string
	inbox       fs.FS
	media       task.CreateFS
	resolutions []resolution
	publish     Publisher
}

// NewCodec creates codec, root is prepended to object keys.
func NewCodec(
	profile thumbnail.Profile,
	root string,
	inbox fs.FS,
	media task.CreateFS,
	publish Publisher,
	opts ...thumbnail.Option,
) (*Codec, error) {
	resolutions := make([]resolution, len(profile.Resolutions))
	for i, r := range profile.Resolutions {
		param, err := r.Parameter(opts...)
		if err != nil {
			return nil, err
		}
		resolutions[i] = resolution{Resolution: r, parameter: param}
	}

	return &Codec{
		stack:       task.NewHTTPStack(),
		root:        root,
		inbox:       inbox,
		media:       media,
		resolutions: resolutions,
		publish:     publish,
	}, nil
}

func (c *Codec) Process(ctx context.Context, evt swarm.Msg[*events.S3EventRecord]) error {
	path, err := url.QueryUnescape(evt.Object.S3.Object.Key)
	if err != nil {
		return errCodecIO.With(errdefs.Wrap(errdefs.ErrInvalidArgument, err))
	}

	slog.Debug("getting media object",
		slog.String("bucket", evt.Object.S3.Bucket.Name),
		slog.String("key", evt.Object.S3.Object.Key),
	)

	return c.ProcessKey(ctx, path)
}

// ProcessKey makes thumbnails of the object
func (c *Codec) ProcessKey(ctx context.Context, path string) error {
	key := filepath.Join(c.root, path)

	source, err := c.source(ctx, key)
	if err != nil {
		return err
	}

	img, err := source.Read(ctx)
	if err != nil {
		return errCodecIO.With(err)
	}
	decoded := &decoded{name: key, image: img}

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range c.resolutions {
		g.Go(func() error {
			target := r.FileSuffix(key)
			sink := task.NewFSSink(c.media, target)
			if err := task.New(r.parameter, decoded, sink).Run(ctx); err != nil {
				return err
			}

			if c.publish == nil {
				return nil
			}

			return c.publish(ctx, ThumbnailPublished{
				Source:     key,
				Thumbnail:  task.Target(target, r.parameter.OutputFormat()),
				Resolution: r.String(),
			})
		})
	}

	if err := g.Wait(); err != nil {
		return errCodecIO.With(err)
	}

	return nil
}

func (c *Codec) source(ctx context.Context, key string) (task.Source, error) {
	format := codec.FormatOf(key)
	switch {
	case format == "json":
		return c.link(ctx, key)
	case codec.Readable(format):
		return task.NewFSSource(c.inbox, key), nil
	default:
		return nil, errCodecNotSupported.With(errdefs.ErrUnsupportedFormat, strings.TrimPrefix(filepath.Ext(key), "."))
	}
}

func (c *Codec) link(_ context.Context, key string) (task.Source, error) {
	fd, err := c.inbox.Open(key)
	if err != nil {
		return nil, errCodecIO.With(errdefs.Wrap(errdefs.ErrIO, err))
	}
	defer fd.Close()

	var link Link
	if err := json.NewDecoder(fd).Decode(&link); err != nil {
		return nil, errCodecIO.With(errdefs.Wrap(errdefs.ErrInvalidArgument, err))
	}

	return task.NewURLSource(c.stack, link.Url), nil
}

// decoded image shared by thumbnails of all resolutions
type decoded struct {
	name  string
	image *task.Image
}

func (d *decoded) Name() string { return d.name }
func (d *decoded) Read(context.Context) (*task.Image, error) { return d.image, nil }
