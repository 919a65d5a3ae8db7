package domain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/DjordjeVuckovic/lbw-site/internal/apperr"
	"github.com/DjordjeVuckovic/lbw-site/pkg/dates"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared struct validator.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the struct tags and the per-kind requirements of a news item.
func (n NewsItem) Validate() error {
	if err := Validator().Struct(n); err != nil {
		return apperr.NewValidationWrap(fmt.Sprintf("news item %d", n.ID), err)
	}
	if _, err := dates.ParseHappened(n.Happened); err != nil {
		return apperr.NewValidationWrap(fmt.Sprintf("news item %d: happened", n.ID), err)
	}

	var missing string
	switch n.Type {
	case NewsLink:
		if n.Link == "" {
			missing = "link"
		}
	case NewsVisual:
		if n.PictureLarge == "" {
			missing = "picture_large"
		}
	case NewsVideo:
		if n.Video == "" {
			missing = "video"
		}
	}
	if missing != "" {
		return apperr.NewValidation(fmt.Sprintf("news item %d: %s item requires %s", n.ID, n.Type, missing))
	}

	return nil
}

// ValidateNews validates every item and rejects duplicate ids.
func ValidateNews(items []NewsItem) error {
	seen := make(map[int]struct{}, len(items))
	var errs []error
	for _, item := range items {
		if err := item.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, ok := seen[item.ID]; ok {
			errs = append(errs, apperr.NewValidation(fmt.Sprintf("duplicate news item id %d", item.ID)))
			continue
		}
		seen[item.ID] = struct{}{}
	}
	return errors.Join(errs...)
}
