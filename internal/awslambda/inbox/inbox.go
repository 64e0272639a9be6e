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
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	_ "github.com/fogfish/logger/v3"
	"github.com/fogfish/logger/x/xlog"
	"github.com/fogfish/stream"
	"github.com/fogfish/swarm"
	"github.com/fogfish/swarm/broker/eventbridge"
	"github.com/fogfish/swarm/broker/events3"
	"github.com/fogfish/swarm/emit"
	"github.com/fogfish/thumbnail"
	"github.com/fogfish/thumbnail/internal/codec"
	"github.com/fogfish/thumbnail/task"
)

// Meta of thumbnail objects at media store
type Meta struct {
	ContentType string `metadata:"Content-Type"`
}

func Runner() {
	q := events3.Must(events3.Listener().Build())

	inbox, err := stream.NewFS(os.Getenv("CONFIG_STORE_INBOX"))
	if err != nil {
		xlog.Emergency("Failed to init inbox s3 client", err)
	}

	media, err := stream.New[Meta](os.Getenv("CONFIG_STORE_MEDIA"))
	if err != nil {
		xlog.Emergency("Failed to init media s3 client", err)
	}

	profile, err := thumbnail.NewProfile(os.Getenv("CONFIG_CODEC_PROFILE"))
	if err != nil {
		xlog.Emergency("Failed to init codec profile", err,
			"profile", os.Getenv("CONFIG_CODEC_PROFILE"),
		)
	}

	opts := []thumbnail.Option{thumbnail.WithOutputFormat("jpg")}
	if val := os.Getenv("CONFIG_CODEC_QUALITY"); val != "" {
		quality, err := strconv.Atoi(val)
		if err != nil {
			xlog.Emergency("Failed to parse codec quality", err, "quality", val)
		}
		opts = append(opts, thumbnail.WithQuality(quality))
	}

	var publish Publisher
	if eventbus := os.Getenv("CONFIG_SINK_EVENTBUS"); eventbus != "" {
		bridge := eventbridge.Must(eventbridge.Emitter().Build(eventbus))
		emitter := emit.NewTyped[ThumbnailPublished](bridge)
		publish = func(ctx context.Context, evt ThumbnailPublished) error {
			return emitter.Enq(ctx, evt)
		}
	}

	create := task.CreateFunc(func(name string) (io.WriteCloser, error) {
		return media.Create(name, &Meta{ContentType: codec.ContentType(codec.FormatOf(name))})
	})

	processor, err := NewCodec(profile, "/", inbox, create, publish, opts...)
	if err != nil {
		xlog.Emergency("Failed to init codec", err)
	}

	bus := bus{codec: processor}
	go bus.onEventS3(events3.Listen(q))

	q.Await()
}

type bus struct {
	codec interface {
		Process(context.Context, swarm.Msg[*events.S3EventRecord]) error
	}
}

func (bus *bus) onEventS3(rcv <-chan swarm.Msg[*events.S3EventRecord], ack chan<- swarm.Msg[*events.S3EventRecord]) {
	for evt := range rcv {
		err := bus.codec.Process(context.Background(), evt)
		if err != nil {
			slog.Error("failed to process s3 event",
				slog.String("bucket", evt.Object.S3.Bucket.Name),
				slog.String("key", evt.Object.S3.Object.Key),
				"error", err,
			)
			ack <- evt.Fail(err)
			continue
		}

		ack <- evt
	}
}
