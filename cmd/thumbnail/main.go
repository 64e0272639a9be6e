//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package main

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"

	_ "github.com/fogfish/logger/v3"
	"github.com/fogfish/logger/x/xlog"
	"github.com/fogfish/thumbnail/internal/config"
	"github.com/fogfish/thumbnail/task"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Default()
	if err != nil {
		xlog.Emergency("Failed to init config", err)
	}

	flags := pflag.NewFlagSet("thumbnail", pflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: thumbnail [flags] {file | url} ...\n")
		flags.PrintDefaults()
	}
	config.Flags(flags, cfg)
	flags.Parse(os.Args[1:])

	cfg, err = config.Load(flags)
	if err != nil {
		xlog.Emergency("Failed to load config", err)
	}

	param, err := cfg.Parameter()
	if err != nil {
		xlog.Emergency("Invalid thumbnail parameters", err)
	}

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sources := make([]task.Source, flags.NArg())
	for i, arg := range flags.Args() {
		sources[i] = sourceOf(arg)
	}

	batch := task.NewBatch(param, task.WithConcurrency(cfg.Concurrency))
	err = batch.Run(ctx, sources,
		destinations(cfg, flags.Args()),
		func(name string) task.Sink { return task.NewFileSink(name, cfg.Overwrite) },
	)
	if err != nil {
		slog.Error("failed to make thumbnails", "error", err)
		os.Exit(1)
	}
}

func sourceOf(arg string) task.Source {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return task.NewURLSource(nil, arg)
	}
	return task.FileSource(arg)
}

// destinations of thumbnails, renamed file names either next to the source
// or in the output directory.
func destinations(cfg *config.Config, args []string) iter.Seq[string] {
	rename := cfg.Renamer()

	return func(yield func(string) bool) {
		for _, arg := range args {
			dir, file := filepath.Split(arg)
			if u, err := url.Parse(arg); err == nil && u.Scheme != "" && u.Host != "" {
				dir, file = "", path.Base(u.Path)
			}

			if cfg.OutputDir != "" {
				dir = cfg.OutputDir
			}

			if !yield(filepath.Join(dir, rename(file))) {
				return
			}
		}
	}
}
