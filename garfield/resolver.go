// Package garfield resolves the image URL of the Garfield strip for a given
// day by trying several independent sites until one of them delivers.
package garfield

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog"
)

// Comic is a resolved comic strip.
type Comic struct {
	Date     string `json:"date"`
	Source   string `json:"source"`
	ImageURL string `json:"image_url"`
}

// Caption is the human-readable title of the comic for date.
func Caption(date Date) string {
	return "Garfield: " + date.Format("January 02, 2006")
}

// ComicResolver looks up the comic for a day.
type ComicResolver interface {
	Resolve(ctx context.Context, date Date) (*Comic, error)
}

var _ ComicResolver = (*Resolver)(nil)

// Resolver tries the sources of a Registry one after another in random order
// and returns the first image URL it gets.
type Resolver struct {
	Registry Registry

	// Shuffle permutes the trial order. It has the signature of rand.Shuffle,
	// which is used when nil.
	Shuffle func(n int, swap func(i, j int))

	Log zerolog.Logger
}

// NewResolver returns a Resolver over reg that logs nothing.
func NewResolver(reg Registry) *Resolver {
	return &Resolver{
		Registry: reg,
		Shuffle:  rand.Shuffle,
		Log:      zerolog.Nop(),
	}
}

// Resolve returns the comic for date. If every source fails, the error is an
// *ExhaustedError listing each failure in attempt order. An empty registry
// yields ErrNoSources without trying anything.
func (r *Resolver) Resolve(ctx context.Context, date Date) (*Comic, error) {
	var sources []Source
	if r.Registry != nil {
		sources = slices.Clone(r.Registry.Sources())
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	shuffle := r.Shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})

	attempts := make([]Attempt, 0, len(sources))
	for _, src := range sources {
		imageURL, err := src.ImageURL(ctx, date)
		if err != nil {
			r.Log.Warn().Err(err).Str("source", src.Name()).Stringer("date", date).Msg("source failed")
			attempts = append(attempts, Attempt{Source: src.Name(), Err: err})
			continue
		}

		r.Log.Debug().Str("source", src.Name()).Stringer("date", date).Str("image_url", imageURL).Msg("comic resolved")
		return &Comic{
			Date:     date.String(),
			Source:   src.Name(),
			ImageURL: imageURL,
		}, nil
	}

	err := &ExhaustedError{Date: date, Attempts: attempts}
	r.Log.Error().Err(err).Stringer("date", date).Int("attempts", len(attempts)).Msg("all sources failed")
	return nil, err
}
