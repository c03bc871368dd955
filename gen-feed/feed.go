package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/gorilla/feeds"
	"github.com/rs/zerolog"

	"github.com/mlafeldt/garfield-feed/garfield"
)

// FeedGenerator renders an RSS feed of the comics of the last FeedLength
// days, newest first. Days without a comic are left out; a registry without
// sources fails the whole feed.
type FeedGenerator struct {
	Resolver   garfield.ComicResolver
	StartDate  garfield.Date
	FeedLength int
	Log        zerolog.Logger
}

func (g *FeedGenerator) Generate(ctx context.Context, w io.Writer) error {
	feed := &feeds.Feed{
		Title:       "Garfield",
		Link:        &feeds.Link{Href: "https://www.gocomics.com/garfield"},
		Description: "Garfield Daily Strip",
		Created:     g.StartDate.Time(),
	}

	for i := 0; i < g.FeedLength; i++ {
		day := g.StartDate.AddDays(-i)

		comic, err := g.Resolver.Resolve(ctx, day)
		if errors.Is(err, garfield.ErrNoSources) {
			return err
		}
		if err != nil {
			g.Log.Warn().Err(err).Stringer("date", day).Msg("skipping day")
			continue
		}

		feed.Add(&feeds.Item{
			Title:       garfield.Caption(day),
			Link:        &feeds.Link{Href: comic.ImageURL},
			Description: fmt.Sprintf(`<img src="%s">`, comic.ImageURL),
			Id:          comic.ImageURL,
			Created:     day.Time(),
		})
	}

	return feed.WriteRss(w)
}

// FeedUploader stores a rendered feed in S3.
type FeedUploader struct {
	BucketName string
	FeedPath   string
	S3Uploader s3manageriface.UploaderAPI
}

// Upload writes the feed read from r and returns its S3 location.
func (u *FeedUploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	upload, err := u.S3Uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.BucketName),
		Key:         aws.String(u.FeedPath),
		Body:        r,
		ContentType: aws.String("text/xml; charset=utf-8"),
	})
	if err != nil {
		return "", err
	}

	return upload.Location, nil
}
