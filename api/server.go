package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mlafeldt/garfield-feed/bot"
	"github.com/mlafeldt/garfield-feed/garfield"
)

// Server exposes comic lookups and the chat handler over HTTP.
type Server struct {
	Resolver garfield.ComicResolver
	Bot      *bot.Handler
	Log      zerolog.Logger
	Now      func() time.Time
}

type errorResponse struct {
	Error string `json:"error"`
}

type chatResponse struct {
	Replies []string `json:"replies"`
}

// NewRouter constructs a Gin engine with all routes registered.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/comic", s.handleComic)
	r.GET("/comic/:date", s.handleComic)
	r.POST("/chat", s.handleChat)
	return r
}

func (s *Server) handleComic(c *gin.Context) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	date := garfield.NewDate(now())
	if v := c.Param("date"); v != "" {
		d, err := garfield.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		date = d
	}

	comic, err := s.Resolver.Resolve(c.Request.Context(), date)
	switch {
	case errors.Is(err, garfield.ErrNoSources):
		s.Log.Error().Err(err).Msg("no sources configured")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	case err != nil:
		s.Log.Error().Err(err).Stringer("date", date).Msg("comic unavailable")
		c.JSON(http.StatusBadGateway, errorResponse{Error: "comic unavailable for " + date.String()})
	default:
		c.JSON(http.StatusOK, comic)
	}
}

func (s *Server) handleChat(c *gin.Context) {
	var msg bot.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	replies := s.Bot.Reply(c.Request.Context(), msg)
	if replies == nil {
		replies = []string{}
	}
	c.JSON(http.StatusOK, chatResponse{Replies: replies})
}
