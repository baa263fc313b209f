package locale

import "errors"

var (
	ErrInvalidBaseURL = errors.New("locale: invalid base URL")
	ErrInvalidLocale  = errors.New("locale: invalid locale tag")
	ErrMissingDefault = errors.New("locale: default locale is required when localization is enabled")
)
