// Package locale rewrites site URLs for a set of available locales.
//
// A [Localizer] knows the site base URL, the default locale and the full list
// of locales the site is published in. It strips a locale segment already
// embedded in a stored path and re-applies the requested one, so the same
// record can be emitted once per language without duplicating prefixes.
//
// # Basic Usage
//
//	l, err := locale.New("https://example.com",
//		locale.WithDefault("en"),
//		locale.WithLocales("en", "fr", "de"),
//		locale.WithLocalization(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	l.Resolve("/en/products/shoe", "fr")
//	// Output: "https://example.com/fr/products/shoe"
//
//	l.Resolve("/products/shoe", "")
//	// Output: "https://example.com/en/products/shoe" (default locale applied)
//
//	l.Absolute("/about")
//	// Output: "https://example.com/about"
//
// # Validation
//
// Locale tags are validated with [golang.org/x/text/language] at construction
// time. Malformed tags return [ErrInvalidLocale]; enabling localization without
// a default locale returns [ErrMissingDefault].
//
// The Localizer is immutable after creation and safe for concurrent use.
package locale
