package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/nodejs-spain/atlas.js/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// aliasTag constrains aliases to hostname-like tokens: lowercase
// alphanumerics and dashes, no leading/trailing dash. This keeps aliases
// usable as config keys, log fields, and metric labels.
const aliasTag = "required,hostname_rfc1123,max=128"

// Alias validates a component alias (or alias-binding target).
func Alias(alias string) error {
	if err := getValidator().Var(alias, aliasTag); err != nil {
		return errors.Config("invalid alias %q: must be a non-empty dash-separated token", alias).
			WithCause(err).
			WithDetail("alias", alias)
	}
	return nil
}

// Struct validates a struct using `validate` tags.
func Struct(s any) error {
	if err := getValidator().Struct(s); err != nil {
		return errors.Config("validation failed").WithCause(err)
	}
	return nil
}
