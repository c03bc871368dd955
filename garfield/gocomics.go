package garfield

import (
	"context"
	"fmt"
	"net/http"
)

const goComicsSelector = "div.comic"

// GoComics scrapes the strip page on gocomics.com, which carries the image
// in the data-image attribute of the comic container.
type GoComics struct {
	BaseURL   string
	Slug      string
	Client    *http.Client
	UserAgent string
}

func (s *GoComics) Name() string { return "gocomics" }

// StripURL returns the page for the given day, e.g. /garfield/2024/02/01.
func (s *GoComics) StripURL(date Date) string {
	return fmt.Sprintf("%s/%s/%s", trimBase(s.BaseURL), s.Slug, date.Format("2006/01/02"))
}

func (s *GoComics) ImageURL(ctx context.Context, date Date) (string, error) {
	doc, err := fetchDocument(ctx, s.Client, s.UserAgent, s.StripURL(date))
	if err != nil {
		return "", err
	}
	return extractImage(doc, goComicsSelector, "data-image")
}
