// Package bot turns chat messages into replies. It knows nothing about any
// chat platform; callers deliver Message values and send back the replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mlafeldt/garfield-feed/garfield"
)

const captionLayout = "January 02, 2006"

// HelpText is the reply to !help.
const HelpText = `Garfield help:

!ping - The bot will respond with a pong
!garfield - The Garfield comic for today
!garfield 2024-02-01 - The Garfield strip at the given date
!help - This message`

// Message is an incoming chat message.
type Message struct {
	Content     string `json:"content"`
	AuthorIsBot bool   `json:"author_is_bot"`
}

// Handler answers chat commands.
type Handler struct {
	Resolver garfield.ComicResolver
	Now      func() time.Time
	Log      zerolog.Logger
}

// New returns a Handler using the wall clock for "today".
func New(r garfield.ComicResolver, log zerolog.Logger) *Handler {
	return &Handler{Resolver: r, Now: time.Now, Log: log}
}

// Reply returns the messages to send in response to msg, in order. Messages
// that are not commands, and anything written by a bot, get no reply.
func (h *Handler) Reply(ctx context.Context, msg Message) []string {
	if msg.AuthorIsBot {
		return nil
	}

	cmd, arg := parseCommand(msg.Content)
	switch cmd {
	case "!ping":
		return []string{"Pong!"}
	case "!help":
		return []string{HelpText}
	case "!garfield":
		return h.garfield(ctx, arg)
	}
	return nil
}

func (h *Handler) garfield(ctx context.Context, arg string) []string {
	date, err := h.date(arg)
	if err != nil {
		return []string{fmt.Sprintf("Unable to parse date: '%s'", arg)}
	}

	comic, err := h.Resolver.Resolve(ctx, date)
	if err != nil {
		ev := h.Log.Error().Err(err).Stringer("date", date)
		if errors.Is(err, garfield.ErrNoSources) {
			ev = ev.Bool("misconfigured", true)
		}
		ev.Msg("comic unavailable")
		return []string{fmt.Sprintf("Sorry, the comic for %s is unavailable.", date.Format(captionLayout))}
	}

	return []string{
		garfield.Caption(date),
		comic.ImageURL,
	}
}

func (h *Handler) date(arg string) (garfield.Date, error) {
	if arg == "" {
		now := time.Now
		if h.Now != nil {
			now = h.Now
		}
		return garfield.NewDate(now()), nil
	}
	return garfield.ParseDate(arg)
}

func parseCommand(content string) (cmd, arg string) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", ""
	}
	return strings.ToLower(fields[0]), strings.Join(fields[1:], " ")
}
