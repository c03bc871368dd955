package main

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"

	"github.com/mlafeldt/garfield-feed/garfield"
	"github.com/mlafeldt/garfield-feed/logger"
)

// Input is the input passed to the Lambda function.
type Input struct {
	Date string `json:"date"`
}

// Output is the output returned by the Lambda function.
type Output struct {
	*garfield.Comic
	Caption string `json:"caption"`
}

type handler struct {
	resolver garfield.ComicResolver
	log      zerolog.Logger
}

func main() {
	log := logger.New(logger.IsDev())

	cfg, err := garfield.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	r := garfield.NewResolver(garfield.DefaultRegistry(cfg))
	r.Log = log

	h := handler{resolver: r, log: log}
	lambda.Start(h.handle)
}

func (h handler) handle(ctx context.Context, input Input) (*Output, error) {
	date := garfield.Today()
	if strings.TrimSpace(input.Date) != "" {
		d, err := garfield.ParseDate(input.Date)
		if err != nil {
			return nil, err
		}
		date = d
	}

	h.log.Info().Stringer("date", date).Msg("resolving comic")

	comic, err := h.resolver.Resolve(ctx, date)
	if err != nil {
		return nil, err
	}

	h.log.Info().Str("source", comic.Source).Str("image_url", comic.ImageURL).Msg("comic resolved")
	return &Output{Comic: comic, Caption: garfield.Caption(date)}, nil
}
