package garfield

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Source is one upstream site able to name the comic image for a day.
// Implementations hold no state between calls and make at most one request.
type Source interface {
	Name() string
	ImageURL(ctx context.Context, date Date) (string, error)
}

const maxBodySize = 5 << 20

var (
	errEmptyDocument = errors.New("empty document")
	errBodyTooLarge  = fmt.Errorf("document larger than %d bytes", maxBodySize)
)

// fetchDocument downloads pageURL and parses it as HTML. The returned
// document's Url is the final URL after redirects.
func fetchDocument(ctx context.Context, client *http.Client, userAgent, pageURL string) (*goquery.Document, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("HTTP error: %s", resp.Status)}
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, &ParseError{URL: pageURL, Err: fmt.Errorf("content type %q: %w", ct, err)}
		}
		if mediaType != "text/html" && mediaType != "application/xhtml+xml" {
			return nil, &ParseError{URL: pageURL, Err: fmt.Errorf("unexpected content type %q", mediaType)}
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &ParseError{URL: pageURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxBodySize {
		return nil, &ParseError{URL: pageURL, Err: errBodyTooLarge}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &ParseError{URL: pageURL, Err: errEmptyDocument}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{URL: pageURL, Err: err}
	}
	doc.Url = resp.Request.URL
	return doc, nil
}

// extractImage reads attr from the first element matching selector and
// returns it as an absolute URL.
func extractImage(doc *goquery.Document, selector, attr string) (string, error) {
	page := doc.Url.String()

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", &NotFoundError{URL: page, Selector: selector}
	}

	v, ok := sel.Attr(attr)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", &AttributeMissingError{URL: page, Selector: selector, Attribute: attr}
	}

	ref, err := url.Parse(v)
	if err != nil {
		return "", &ParseError{URL: page, Err: fmt.Errorf("image reference %q: %w", v, err)}
	}
	return doc.Url.ResolveReference(ref).String(), nil
}

func trimBase(base string) string {
	return strings.TrimRight(base, "/")
}
