package main

import (
	"bytes"
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/kelseyhightower/envconfig"

	"github.com/mlafeldt/garfield-feed/garfield"
	"github.com/mlafeldt/garfield-feed/logger"
)

// Input is the input passed to the Lambda function.
type Input struct{}

// Output is the output returned by the Lambda function.
type Output struct {
	FeedURL string `json:"feed_url"`
}

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, input Input) (*Output, error) {
	log := logger.New(logger.IsDev())

	var env struct {
		BucketName string `envconfig:"BUCKET_NAME" required:"true"`
		FeedPath   string `envconfig:"FEED_PATH" required:"true"`
		FeedLength int    `envconfig:"FEED_LENGTH" default:"30"`
	}
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}
	log.Debug().Interface("env", env).Msg("configuration")

	cfg, err := garfield.LoadConfig()
	if err != nil {
		return nil, err
	}
	resolver := garfield.NewResolver(garfield.DefaultRegistry(cfg))
	resolver.Log = log

	today := garfield.Today()
	var buf bytes.Buffer

	log.Info().Stringer("date", today).Int("length", env.FeedLength).Msg("generating feed")
	g := FeedGenerator{
		Resolver:   resolver,
		StartDate:  today,
		FeedLength: env.FeedLength,
		Log:        log,
	}
	if err := g.Generate(ctx, &buf); err != nil {
		return nil, err
	}

	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}

	log.Info().Str("bucket", env.BucketName).Str("path", env.FeedPath).Msg("uploading feed")
	u := FeedUploader{
		BucketName: env.BucketName,
		FeedPath:   env.FeedPath,
		S3Uploader: s3manager.NewUploader(sess),
	}
	feedURL, err := u.Upload(ctx, &buf)
	if err != nil {
		return nil, err
	}

	log.Info().Str("feed_url", feedURL).Msg("upload completed")
	return &Output{feedURL}, nil
}
