package garfield

import "net/http"

// Registry lists the sources a Resolver may try. Order carries no meaning.
type Registry interface {
	Sources() []Source
}

// StaticRegistry is a fixed list of sources.
type StaticRegistry []Source

func (r StaticRegistry) Sources() []Source { return r }

// DefaultRegistry returns every known source configured by cfg. The HTML
// sources share one HTTP client.
func DefaultRegistry(cfg Config) StaticRegistry {
	client := &http.Client{Timeout: cfg.Timeout}

	return StaticRegistry{
		&GoComics{
			BaseURL:   cfg.GoComicsURL,
			Slug:      cfg.Slug,
			Client:    client,
			UserAgent: cfg.UserAgent,
		},
		&Centralus{
			BaseURL:   cfg.CentralusURL,
			Slug:      cfg.Slug,
			Client:    client,
			UserAgent: cfg.UserAgent,
		},
		&Uclick{
			BaseURL:   cfg.UclickURL,
			ShortSlug: cfg.ShortSlug,
			Extension: cfg.Extension,
		},
	}
}
