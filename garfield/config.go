package garfield

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the deployment-specific parts of the sources. Every field can
// be set from the environment with the GARFIELD_ prefix, e.g.
// GARFIELD_GOCOMICS_URL.
type Config struct {
	GoComicsURL  string        `envconfig:"GOCOMICS_URL" default:"https://www.gocomics.com"`
	CentralusURL string        `envconfig:"CENTRALUS_URL" default:"https://production.centralus.gocomics.com"`
	UclickURL    string        `envconfig:"UCLICK_URL" default:"https://picayune.uclick.com"`
	Slug         string        `envconfig:"SLUG" default:"garfield"`
	ShortSlug    string        `envconfig:"SHORT_SLUG" default:"ga"`
	Extension    string        `envconfig:"EXTENSION" default:"gif"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s"`
	UserAgent    string        `envconfig:"USER_AGENT" default:"garfield-feed"`
}

// LoadConfig reads Config from the environment, falling back to defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("garfield", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotenv loads variables from the given files, or .env if none are
// given. Files that do not exist are skipped; malformed ones are an error.
func LoadDotenv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
