//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package thumbnail_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/thumbnail"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/filter"
	"github.com/fogfish/thumbnail/geometry"
	"github.com/fogfish/thumbnail/resizer"
)

func TestParameter(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p, err := thumbnail.New(thumbnail.WithSize(100, 50))
		it.Then(t).Should(it.Nil(err))

		size, bySize := p.Size()
		_, _, byScale := p.Scale()
		_, hasRegion := p.Region()
		it.Then(t).Should(
			it.True(bySize),
			it.Equal(size, geometry.Dimension{Width: 100, Height: 50}),
			it.True(p.KeepAspectRatio()),
			it.True(p.FitWithin()),
			it.True(p.UseOrientation()),
			it.Equal(p.OutputFormat(), thumbnail.FormatOriginal),
			it.Equal(p.Quality(), 0),
			it.Equal(p.ResizerFactory(), resizer.Default),
			it.Equal(len(p.Filters()), 0),
		)
		it.Then(t).ShouldNot(
			it.True(byScale),
			it.True(hasRegion),
		)
	})

	t.Run("Scale", func(t *testing.T) {
		p, err := thumbnail.New(thumbnail.WithScale(0.6, 0.4))
		it.Then(t).Should(it.Nil(err))

		size, err := p.Maker().Size(geometry.Dimension{Width: 200, Height: 200})
		it.Then(t).Should(
			it.Nil(err),
			it.Equal(size, geometry.Dimension{Width: 120, Height: 80}),
		)
	})

	t.Run("AllOptions", func(t *testing.T) {
		region := geometry.Region{Position: geometry.Center, Size: geometry.RelativeSize(0.5)}
		p, err := thumbnail.New(
			thumbnail.WithSize(10, 10),
			thumbnail.WithKeepAspectRatio(false),
			thumbnail.WithFitWithin(false),
			thumbnail.WithRegion(region),
			thumbnail.WithFilters(filter.Horizontal, filter.Right90),
			thumbnail.WithResizerFactory(resizer.Fixed(resizer.Lanczos)),
			thumbnail.WithOutputFormat("JPG"),
			thumbnail.WithQuality(80),
			thumbnail.WithOrientation(false),
		)
		it.Then(t).Should(it.Nil(err))

		r, hasRegion := p.Region()
		it.Then(t).Should(
			it.True(hasRegion),
			it.Equiv(r, region),
			it.Equal(len(p.Filters()), 2),
			it.Equal(p.OutputFormat(), "jpeg"),
			it.Equal(p.Quality(), 80),
		)
		it.Then(t).ShouldNot(
			it.True(p.KeepAspectRatio()),
			it.True(p.FitWithin()),
			it.True(p.UseOrientation()),
		)
	})

	t.Run("FiltersAreCopied", func(t *testing.T) {
		p, _ := thumbnail.New(thumbnail.WithSize(10, 10), thumbnail.WithFilters(filter.Horizontal))

		seq := p.Filters()
		seq[0] = filter.Vertical
		it.Then(t).Should(
			it.Equal(p.Filters()[0], filter.Filter(filter.Horizontal)),
		)
	})

	t.Run("InvalidState", func(t *testing.T) {
		for _, opts := range [][]thumbnail.Option{
			{},
			{thumbnail.WithKeepAspectRatio(true)},
			{thumbnail.WithSize(10, 10), thumbnail.WithScale(0.5, 0.5)},
			{thumbnail.WithSize(10, 10), thumbnail.WithSize(20, 20)},
			{thumbnail.WithScale(0.5, 0.5), thumbnail.WithFitWithin(true)},
			{thumbnail.WithScale(0.5, 0.5), thumbnail.WithKeepAspectRatio(true)},
			{thumbnail.WithSize(10, 10), thumbnail.WithQuality(10), thumbnail.WithQuality(20)},
		} {
			_, err := thumbnail.New(opts...)
			it.Then(t).Should(
				it.True(errors.Is(err, errdefs.ErrInvalidState)),
			)
		}
	})

	t.Run("InvalidArgument", func(t *testing.T) {
		for _, opts := range [][]thumbnail.Option{
			{thumbnail.WithSize(0, 10)},
			{thumbnail.WithSize(10, -1)},
			{thumbnail.WithScale(0, 0.5)},
			{thumbnail.WithScale(0.5, -1)},
			{thumbnail.WithSize(10, 10), thumbnail.WithQuality(101)},
			{thumbnail.WithSize(10, 10), thumbnail.WithFilters(nil)},
			{thumbnail.WithSize(10, 10), thumbnail.WithResizerFactory(nil)},
			{thumbnail.WithSize(10, 10), thumbnail.WithRegion(geometry.Region{})},
		} {
			_, err := thumbnail.New(opts...)
			it.Then(t).Should(
				it.True(errors.Is(err, errdefs.ErrInvalidArgument)),
			)
		}
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		for _, format := range []string{"webp", "svg", ""} {
			_, err := thumbnail.New(thumbnail.WithSize(10, 10), thumbnail.WithOutputFormat(format))
			it.Then(t).Should(
				it.True(errors.Is(err, errdefs.ErrUnsupportedFormat)),
			)
		}
	})
}

func TestRename(t *testing.T) {
	for rename, expect := range map[string]string{
		thumbnail.NoChange.Path("/a/photo.jpg"):        "/a/photo.jpg",
		thumbnail.PrefixThumbnail.Path("/a/photo.jpg"): "/a/thumbnail.photo.jpg",
		thumbnail.SuffixThumbnail.Path("/a/photo.jpg"): "/a/photo.thumbnail.jpg",
		thumbnail.SuffixThumbnail.Path("photo"):        "photo.thumbnail",
	} {
		it.Then(t).Should(
			it.Equal(rename, expect),
		)
	}

	t.Run("Consecutive", func(t *testing.T) {
		var seq []string
		for name := range thumbnail.Consecutive("thumb-%d.png", 1) {
			if len(seq) == 3 {
				break
			}
			seq = append(seq, name)
		}

		it.Then(t).Should(
			it.Equiv(seq, []string{"thumb-1.png", "thumb-2.png", "thumb-3.png"}),
		)
	})

	t.Run("Renamed", func(t *testing.T) {
		seq := slices.Collect(thumbnail.Renamed(thumbnail.PrefixThumbnail, "a.jpg", "b/c.png"))
		it.Then(t).Should(
			it.Equiv(seq, []string{"thumbnail.a.jpg", "b/thumbnail.c.png"}),
		)
	})
}
