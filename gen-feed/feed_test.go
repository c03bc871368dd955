package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/google/go-cmp/cmp"
	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlafeldt/garfield-feed/garfield"
)

// weekdaySource has no comic on Sundays.
type weekdaySource struct{}

func (weekdaySource) Name() string { return "weekday" }

func (weekdaySource) ImageURL(_ context.Context, date garfield.Date) (string, error) {
	if date.Time().Weekday() == time.Sunday {
		return "", &garfield.NotFoundError{URL: "https://img.example", Selector: "div.comic"}
	}
	return "https://img.example/" + date.String() + ".gif", nil
}

func TestFeedGenerator(t *testing.T) {
	var buf bytes.Buffer
	start, _ := garfield.ParseDate("2018-10-01") // a Monday
	g := FeedGenerator{
		Resolver:   garfield.NewResolver(garfield.StaticRegistry{weekdaySource{}}),
		StartDate:  start,
		FeedLength: 3,
		Log:        zerolog.Nop(),
	}

	if err := g.Generate(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}

	feed, err := gofeed.NewParser().Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Garfield", feed.Title)

	type item struct{ Title, Link string }
	var got []item
	for _, it := range feed.Items {
		got = append(got, item{it.Title, it.Link})
	}

	want := []item{
		{"Garfield: October 01, 2018", "https://img.example/2018-10-01.gif"},
		{"Garfield: September 29, 2018", "https://img.example/2018-09-29.gif"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestFeedGeneratorNoSources(t *testing.T) {
	var buf bytes.Buffer
	start, _ := garfield.ParseDate("2018-10-01")
	g := FeedGenerator{
		Resolver:   garfield.NewResolver(garfield.StaticRegistry{}),
		StartDate:  start,
		FeedLength: 30,
		Log:        zerolog.Nop(),
	}

	err := g.Generate(context.Background(), &buf)

	assert.ErrorIs(t, err, garfield.ErrNoSources)
	assert.Zero(t, buf.Len())
}

type fakeUploader struct {
	s3manageriface.UploaderAPI
	input *s3manager.UploadInput
	body  string
	err   error
}

func (f *fakeUploader) UploadWithContext(_ aws.Context, input *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = input
	b, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(b)
	return &s3manager.UploadOutput{
		Location: "https://" + aws.StringValue(input.Bucket) + ".s3.amazonaws.com/" + aws.StringValue(input.Key),
	}, nil
}

func TestFeedUploader(t *testing.T) {
	fake := &fakeUploader{}
	u := FeedUploader{BucketName: "garfield-feed-example", FeedPath: "v1/rss.xml", S3Uploader: fake}

	loc, err := u.Upload(context.Background(), bytes.NewBufferString("<rss/>"))
	require.NoError(t, err)

	assert.Equal(t, "https://garfield-feed-example.s3.amazonaws.com/v1/rss.xml", loc)
	assert.Equal(t, "text/xml; charset=utf-8", aws.StringValue(fake.input.ContentType))
	assert.Equal(t, "<rss/>", fake.body)
}

func TestFeedUploaderError(t *testing.T) {
	u := FeedUploader{S3Uploader: &fakeUploader{err: errors.New("access denied")}}

	_, err := u.Upload(context.Background(), bytes.NewBufferString("<rss/>"))
	assert.EqualError(t, err, "access denied")
}
