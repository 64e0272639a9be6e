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
	"iter"
	"log/slog"

	"github.com/fogfish/thumbnail"
	"github.com/fogfish/thumbnail/errdefs"
	"golang.org/x/sync/errgroup"
)

// Batch makes thumbnails of sources using the same parameter. Destination
// names are consumed in order of sources.
type Batch struct {
	parameter   *thumbnail.Parameter
	concurrency int
}

// BatchOption configures batch
type BatchOption func(*Batch)

// WithConcurrency processes up to n sources at once, batch is sequential
// by default.
func WithConcurrency(n int) BatchOption {
	return func(b *Batch) { b.concurrency = max(n, 1) }
}

func NewBatch(param *thumbnail.Parameter, opts ...BatchOption) *Batch {
	b := &Batch{parameter: param, concurrency: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run tasks for every source. The first failure stops the batch. The batch
// fails with errdefs.ErrInsufficientDestinations when names are exhausted.
func (b *Batch) Run(ctx context.Context, sources []Source, names iter.Seq[string], sink func(name string) Sink) error {
	next, stop := iter.Pull(names)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for _, source := range sources {
		name, has := next()
		if !has {
			if err := g.Wait(); err != nil {
				return err
			}
			return errNoDestination.With(errdefs.ErrInsufficientDestinations, source.Name())
		}

		if ctx.Err() != nil {
			break
		}

		t := New(b.parameter, source, sink(name))
		g.Go(func() error {
			if err := t.Run(ctx); err != nil {
				slog.Error("failed to make thumbnail",
					slog.String("source", source.Name()),
					slog.String("target", name),
					"error", err,
				)
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
