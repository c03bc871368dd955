package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlafeldt/garfield-feed/garfield"
)

type stubSource struct{ err error }

func (s stubSource) Name() string { return "stub" }

func (s stubSource) ImageURL(context.Context, garfield.Date) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://img.example/x.gif", nil
}

func TestHeartbeat(t *testing.T) {
	var pings int
	var agent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pings++
		agent = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	date, _ := garfield.ParseDate("2024-02-01")
	hb := Heartbeat{
		Resolver:  garfield.NewResolver(garfield.StaticRegistry{stubSource{}}),
		Endpoint:  ts.URL,
		UserAgent: "garfield-feed",
	}

	out, err := hb.Run(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, "200 OK", out.Status)
	assert.Equal(t, "https://img.example/x.gif", out.Comic.ImageURL)
	assert.Equal(t, 1, pings)
	assert.Equal(t, "garfield-feed", agent)
}

func TestHeartbeatSkippedWhenUnavailable(t *testing.T) {
	var pings int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pings++
	}))
	defer ts.Close()

	date, _ := garfield.ParseDate("2024-02-01")
	hb := Heartbeat{
		Resolver: garfield.NewResolver(garfield.StaticRegistry{stubSource{err: errors.New("down")}}),
		Endpoint: ts.URL,
	}

	_, err := hb.Run(context.Background(), date)

	var exhausted *garfield.ExhaustedError
	assert.ErrorAs(t, err, &exhausted)
	assert.Zero(t, pings)
}

func TestHeartbeatEndpointError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer ts.Close()

	date, _ := garfield.ParseDate("2024-02-01")
	hb := Heartbeat{
		Resolver: garfield.NewResolver(garfield.StaticRegistry{stubSource{}}),
		Endpoint: ts.URL,
	}

	_, err := hb.Run(context.Background(), date)
	assert.EqualError(t, err, "HTTP error: 410 Gone")
}
