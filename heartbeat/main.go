package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/kelseyhightower/envconfig"

	"github.com/mlafeldt/garfield-feed/garfield"
	"github.com/mlafeldt/garfield-feed/logger"
)

type Input struct{}

type Output struct {
	Endpoint string          `json:"endpoint"`
	Status   string          `json:"status"`
	Comic    *garfield.Comic `json:"comic"`
}

// Heartbeat pings Endpoint only when today's comic can be resolved, so the
// monitor behind it alerts once every source is broken.
type Heartbeat struct {
	Resolver  garfield.ComicResolver
	Endpoint  string
	Client    *http.Client
	UserAgent string
}

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, input Input) (*Output, error) {
	log := logger.New(logger.IsDev())

	var env struct {
		Endpoint string `envconfig:"HEARTBEAT_ENDPOINT" required:"true"`
	}
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}
	cfg, err := garfield.LoadConfig()
	if err != nil {
		return nil, err
	}

	resolver := garfield.NewResolver(garfield.DefaultRegistry(cfg))
	resolver.Log = log

	hb := Heartbeat{
		Resolver:  resolver,
		Endpoint:  env.Endpoint,
		Client:    &http.Client{Timeout: 10 * time.Second},
		UserAgent: cfg.UserAgent,
	}
	out, err := hb.Run(ctx, garfield.Today())
	if err != nil {
		log.Error().Err(err).Msg("heartbeat skipped")
		return nil, err
	}

	log.Info().Str("status", out.Status).Str("source", out.Comic.Source).Msg("heartbeat sent")
	return out, nil
}

func (hb *Heartbeat) Run(ctx context.Context, date garfield.Date) (*Output, error) {
	comic, err := hb.Resolver.Resolve(ctx, date)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", hb.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("User-Agent", hb.UserAgent)

	client := hb.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	return &Output{
		Endpoint: hb.Endpoint,
		Status:   resp.Status,
		Comic:    comic,
	}, nil
}
