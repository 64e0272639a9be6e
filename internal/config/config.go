//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package config loads configuration of thumbnail utilities from command
// line flags, environment (THUMBNAIL_*) and optional config file.
package config

import (
	"strconv"
	"strings"

	"github.com/creasty/defaults"
	"github.com/fogfish/faults"
	"github.com/fogfish/thumbnail"
	"github.com/fogfish/thumbnail/errdefs"
	"github.com/fogfish/thumbnail/resizer"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	errConfig     = faults.Type("invalid configuration")
	errConfigFile = faults.Safe1[string]("failed to read config file (%s)")
	errSize       = faults.Safe1[string]("invalid size, expected {width}x{height} (%s)")
)

// EnvPrefix of environment variables
const EnvPrefix = "THUMBNAIL"

// Config of thumbnail generation
type Config struct {
	Size            string  `mapstructure:"size"`
	Scale           float64 `mapstructure:"scale" validate:"gte=0"`
	KeepAspectRatio bool    `mapstructure:"keep-aspect-ratio" default:"true"`
	FitWithin       bool    `mapstructure:"fit-within" default:"true"`
	Format          string  `mapstructure:"format" default:"original" validate:"required"`
	Quality         int     `mapstructure:"quality" validate:"gte=0,lte=100"`
	Resizer         string  `mapstructure:"resizer" default:"auto" validate:"oneof=auto auto-progressive null bilinear bicubic lanczos progressive tile"`
	UseOrientation  bool    `mapstructure:"use-orientation" default:"true"`
	Overwrite       bool    `mapstructure:"overwrite"`
	Rename          string  `mapstructure:"rename" default:"prefix" validate:"oneof=prefix suffix none"`
	OutputDir       string  `mapstructure:"output-dir"`
	Concurrency     int     `mapstructure:"concurrency" default:"1" validate:"gte=1,lte=256"`
}

// Default configuration
func Default() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errConfig.With(err)
	}
	return cfg, nil
}

// Flags defines command line flags, defaults are taken from config
func Flags(flags *pflag.FlagSet, cfg *Config) {
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("size", cfg.Size, "thumbnail box {width}x{height}")
	flags.Float64("scale", cfg.Scale, "scaling factor, alternative to size")
	flags.Bool("keep-aspect-ratio", cfg.KeepAspectRatio, "keep aspect ratio of source")
	flags.Bool("fit-within", cfg.FitWithin, "fit thumbnail within the box, covers the box otherwise")
	flags.String("format", cfg.Format, "output format: original, determine, jpg, png, gif, bmp, tiff")
	flags.Int("quality", cfg.Quality, "quality of lossy formats 1..100, 0 is codec default")
	flags.String("resizer", cfg.Resizer, "resizer: auto, auto-progressive, null, bilinear, bicubic, lanczos, progressive, tile")
	flags.Bool("use-orientation", cfg.UseOrientation, "correct orientation using EXIF metadata")
	flags.Bool("overwrite", cfg.Overwrite, "overwrite existing files")
	flags.String("rename", cfg.Rename, "naming of thumbnails: prefix, suffix, none")
	flags.String("output-dir", cfg.OutputDir, "directory of thumbnails, next to source if empty")
	flags.Int("concurrency", cfg.Concurrency, "number of images processed at once")
}

// Load configuration. Command line flags precede environment, which
// precedes the config file.
func Load(flags *pflag.FlagSet) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, errConfig.With(err)
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errConfigFile.With(errdefs.Wrap(errdefs.ErrInvalidArgument, err), file)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errConfig.With(errdefs.Wrap(errdefs.ErrInvalidArgument, err))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errConfig.With(errdefs.Wrap(errdefs.ErrInvalidArgument, err))
	}

	return cfg, nil
}

// Parameter of thumbnail defined by the config
func (cfg *Config) Parameter() (*thumbnail.Parameter, error) {
	factory, err := cfg.ResizerFactory()
	if err != nil {
		return nil, err
	}

	opts := []thumbnail.Option{
		thumbnail.WithOutputFormat(cfg.Format),
		thumbnail.WithQuality(cfg.Quality),
		thumbnail.WithOrientation(cfg.UseOrientation),
		thumbnail.WithResizerFactory(factory),
	}

	if cfg.Size != "" {
		w, h, err := ParseSize(cfg.Size)
		if err != nil {
			return nil, err
		}
		opts = append(opts,
			thumbnail.WithSize(w, h),
			thumbnail.WithKeepAspectRatio(cfg.KeepAspectRatio),
			thumbnail.WithFitWithin(cfg.FitWithin),
		)
	}

	if cfg.Scale != 0 {
		opts = append(opts, thumbnail.WithScale(cfg.Scale, cfg.Scale))
	}

	return thumbnail.New(opts...)
}

// ResizerFactory defined by the config
func (cfg *Config) ResizerFactory() (resizer.Factory, error) {
	switch cfg.Resizer {
	case "", "auto":
		return resizer.Default, nil
	case "auto-progressive":
		return resizer.DefaultProgressive, nil
	default:
		r, err := resizer.ByName(cfg.Resizer)
		if err != nil {
			return nil, err
		}
		return resizer.Fixed(r), nil
	}
}

// Renamer of thumbnail files
func (cfg *Config) Renamer() thumbnail.Rename {
	switch cfg.Rename {
	case "suffix":
		return thumbnail.SuffixThumbnail
	case "none":
		return thumbnail.NoChange
	default:
		return thumbnail.PrefixThumbnail
	}
}

// ParseSize parses {width}x{height}
func ParseSize(size string) (int, int, error) {
	seq := strings.Split(strings.ToLower(size), "x")
	if len(seq) != 2 {
		return 0, 0, errSize.With(errdefs.ErrInvalidArgument, size)
	}

	w, err := strconv.Atoi(seq[0])
	if err != nil {
		return 0, 0, errSize.With(errdefs.ErrInvalidArgument, size)
	}

	h, err := strconv.Atoi(seq[1])
	if err != nil {
		return 0, 0, errSize.With(errdefs.ErrInvalidArgument, size)
	}

	return w, h, nil
}
