package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mlafeldt/garfield-feed/garfield"
	"github.com/mlafeldt/garfield-feed/logger"
)

func main() {
	log := logger.NewWithWriter(os.Stderr, logger.IsDev())
	if err := garfield.LoadDotenv(); err != nil {
		log.Fatal().Err(err).Msg("invalid .env file")
	}

	cfg, err := garfield.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	r := garfield.NewResolver(garfield.DefaultRegistry(cfg))
	r.Log = log

	dates := os.Args[1:]
	if len(dates) == 0 {
		dates = []string{garfield.Today().String()}
	}

	for _, arg := range dates {
		date, err := garfield.ParseDate(arg)
		if err != nil {
			log.Fatal().Err(err).Send()
		}

		comic, err := r.Resolve(context.Background(), date)
		if err != nil {
			log.Fatal().Err(err).Msg("comic unavailable")
		}

		fmt.Printf("%s %s\n", comic.Date, comic.ImageURL)
	}
}
