package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	fdk "github.com/fnproject/fdk-go"
	"github.com/rs/zerolog"

	"github.com/mlafeldt/garfield-feed/garfield"
	"github.com/mlafeldt/garfield-feed/logger"
)

type input struct {
	Date string `json:"date"`
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
	fdk.Handle(fdk.HandlerFunc(h.serve))
}

func (h handler) serve(ctx context.Context, in io.Reader, out io.Writer) {
	fdk.SetHeader(out, "Content-Type", "application/json")

	status, body := h.lookup(ctx, in)
	fdk.WriteStatus(out, status)
	if err := json.NewEncoder(out).Encode(body); err != nil {
		h.log.Error().Err(err).Msg("writing response failed")
	}
}

func (h handler) lookup(ctx context.Context, in io.Reader) (int, any) {
	var req input
	if err := json.NewDecoder(in).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return http.StatusBadRequest, map[string]string{"error": err.Error()}
	}

	date := garfield.Today()
	if strings.TrimSpace(req.Date) != "" {
		d, err := garfield.ParseDate(req.Date)
		if err != nil {
			return http.StatusBadRequest, map[string]string{"error": err.Error()}
		}
		date = d
	}

	comic, err := h.resolver.Resolve(ctx, date)
	if err != nil {
		h.log.Error().Err(err).Stringer("date", date).Msg("comic unavailable")
		return http.StatusBadGateway, map[string]string{"error": "comic unavailable for " + date.String()}
	}
	return http.StatusOK, comic
}
