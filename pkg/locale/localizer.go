package locale

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Localizer resolves site paths to absolute, optionally localized URLs.
// It is immutable after creation, making it safe for concurrent use.
type Localizer struct {
	base *url.URL

	// Lowercased locale tags for segment matching.
	available map[string]struct{}

	defaultLang string
	requested   []string

	// Pre-computed list: default first, others sorted.
	languages []string

	enabled bool
}

// Option configures the Localizer during construction.
type Option func(*Localizer) error

// New creates a Localizer for the given site base URL.
// The base URL must be absolute (scheme and host).
func New(baseURL string, opts ...Option) (*Localizer, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	base.RawQuery = ""
	base.Fragment = ""

	l := &Localizer{
		base:      base,
		available: make(map[string]struct{}),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if l.enabled && l.defaultLang == "" {
		return nil, ErrMissingDefault
	}

	l.languages = buildLanguages(l.defaultLang, l.requested)
	for _, lang := range l.languages {
		l.available[strings.ToLower(lang)] = struct{}{}
	}

	return l, nil
}

// WithDefault sets the default locale, used as the path prefix when
// localization is enabled and no explicit locale is requested.
func WithDefault(lang string) Option {
	return func(l *Localizer) error {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			return nil
		}
		if err := validateTag(lang); err != nil {
			return err
		}
		l.defaultLang = lang
		return nil
	}
}

// WithLocales sets the locales the site is published in.
// Empty entries are ignored, duplicates collapsed.
func WithLocales(langs ...string) Option {
	return func(l *Localizer) error {
		for _, lang := range langs {
			lang = strings.TrimSpace(lang)
			if lang == "" {
				continue
			}
			if err := validateTag(lang); err != nil {
				return err
			}
			l.requested = append(l.requested, lang)
		}
		return nil
	}
}

// WithLocalization toggles default-locale prefixing.
func WithLocalization(enabled bool) Option {
	return func(l *Localizer) error {
		l.enabled = enabled
		return nil
	}
}

// Languages returns the available locales, default first.
func (l *Localizer) Languages() []string {
	return slices.Clone(l.languages)
}

// Default returns the default locale.
func (l *Localizer) Default() string {
	return l.defaultLang
}

// Enabled reports whether localization is on.
func (l *Localizer) Enabled() bool {
	return l.enabled
}

// IsAvailable reports whether lang is one of the configured locales.
// Matching is case-insensitive.
func (l *Localizer) IsAvailable(lang string) bool {
	if lang == "" {
		return false
	}
	_, ok := l.available[strings.ToLower(lang)]
	return ok
}

// Absolute resolves p against the site base URL.
// Values that already are absolute URLs are returned unchanged.
func (l *Localizer) Absolute(p string) string {
	if u, err := url.Parse(p); err == nil && u.IsAbs() {
		return p
	}
	return strings.TrimSuffix(l.base.String(), "/") + "/" + strings.TrimLeft(p, "/")
}

// Resolve strips a locale segment embedded in raw and returns the absolute
// URL for the requested locale. When lang is empty the default locale is
// applied if localization is enabled, otherwise the bare path is used.
func (l *Localizer) Resolve(raw, lang string) string {
	p, query := l.sitePath(raw)

	segments := strings.Split(p, "/")
	if len(segments) > 1 && l.IsAvailable(segments[1]) {
		segments = slices.Delete(segments, 1, 2)
	}
	p = strings.Join(segments, "/")

	if query != "" {
		p += "?" + query
	}

	switch {
	case lang != "":
		p = "/" + lang + p
	case l.enabled:
		p = "/" + l.defaultLang + p
	}

	return l.Absolute(p)
}

// OnSite reports whether raw addresses this site: a site path, or an
// absolute URL on the base host.
func (l *Localizer) OnSite(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return true
	}
	return strings.EqualFold(u.Host, l.base.Host)
}

// sitePath returns the escaped path of raw relative to the site root,
// with a leading slash when non-empty, and its raw query.
// Absolute URLs on the base host lose the base path prefix; scheme and
// host of any absolute URL are discarded.
func (l *Localizer) sitePath(raw string) (string, string) {
	var p, query string
	u, err := url.Parse(raw)
	if err == nil {
		p, query = u.EscapedPath(), u.RawQuery
	} else {
		p, query, _ = strings.Cut(raw, "?")
		p, _, _ = strings.Cut(p, "#")
	}
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	if err == nil && u.IsAbs() && strings.EqualFold(u.Host, l.base.Host) {
		if bp := strings.TrimSuffix(l.base.EscapedPath(), "/"); bp != "" {
			switch {
			case p == bp:
				p = ""
			case strings.HasPrefix(p, bp+"/"):
				p = p[len(bp):]
			}
		}
	}
	return p, query
}

func buildLanguages(defaultLang string, requested []string) []string {
	seen := make(map[string]bool, len(requested)+1)
	langs := make([]string, 0, len(requested)+1)

	if defaultLang != "" {
		langs = append(langs, defaultLang)
		seen[strings.ToLower(defaultLang)] = true
	}

	others := make([]string, 0, len(requested))
	for _, lang := range requested {
		key := strings.ToLower(lang)
		if seen[key] {
			continue
		}
		seen[key] = true
		others = append(others, lang)
	}
	sort.Strings(others)

	return append(langs, others...)
}

func validateTag(lang string) error {
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidLocale, lang, err)
	}
	return nil
}
