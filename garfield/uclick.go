package garfield

import (
	"context"
	"fmt"
)

// Uclick derives the image URL from the archive's fixed file naming scheme
// without any request. Whether the file exists is up to whoever loads it.
type Uclick struct {
	BaseURL   string
	ShortSlug string
	Extension string
}

func (s *Uclick) Name() string { return "uclick" }

func (s *Uclick) ImageURL(_ context.Context, date Date) (string, error) {
	return fmt.Sprintf("%s/comics/%s/%s/%s%s.%s",
		trimBase(s.BaseURL), s.ShortSlug, date.Format("2006"), s.ShortSlug, date.Format("060102"), s.Extension), nil
}
