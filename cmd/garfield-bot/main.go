package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"

	"github.com/mlafeldt/garfield-feed/api"
	"github.com/mlafeldt/garfield-feed/bot"
	"github.com/mlafeldt/garfield-feed/garfield"
	"github.com/mlafeldt/garfield-feed/logger"
)

func main() {
	isDev := logger.IsDev()
	log := logger.New(isDev)
	if err := garfield.LoadDotenv(); err != nil {
		log.Fatal().Err(err).Msg("invalid .env file")
	}

	var env struct {
		ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	}
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg, err := garfield.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	resolver := garfield.NewResolver(garfield.DefaultRegistry(cfg))
	resolver.Log = log

	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(&api.Server{
		Resolver: resolver,
		Bot:      bot.New(resolver, log),
		Log:      log,
	})

	srv := &http.Server{
		Addr:              env.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", env.ListenAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("stopped")
}
