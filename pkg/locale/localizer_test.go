package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitemap/pkg/locale"
)

func newLocalizer(t *testing.T, enabled bool) *locale.Localizer {
	t.Helper()
	l, err := locale.New("https://example.com",
		locale.WithDefault("en"),
		locale.WithLocales("en", "fr", "de"),
		locale.WithLocalization(enabled),
	)
	require.NoError(t, err)
	return l
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects relative base URL", func(t *testing.T) {
		t.Parallel()
		_, err := locale.New("/relative")
		require.ErrorIs(t, err, locale.ErrInvalidBaseURL)
	})

	t.Run("rejects malformed locale", func(t *testing.T) {
		t.Parallel()
		_, err := locale.New("https://example.com", locale.WithLocales("en", "not a locale!"))
		require.ErrorIs(t, err, locale.ErrInvalidLocale)
	})

	t.Run("requires default when localization enabled", func(t *testing.T) {
		t.Parallel()
		_, err := locale.New("https://example.com",
			locale.WithLocales("en", "fr"),
			locale.WithLocalization(true),
		)
		require.ErrorIs(t, err, locale.ErrMissingDefault)
	})

	t.Run("orders languages default first", func(t *testing.T) {
		t.Parallel()
		l, err := locale.New("https://example.com",
			locale.WithDefault("fr"),
			locale.WithLocales("pl", "de", "fr", "de", ""),
		)
		require.NoError(t, err)
		require.Equal(t, []string{"fr", "de", "pl"}, l.Languages())
		require.Equal(t, "fr", l.Default())
	})
}

func TestLocalizer_Absolute(t *testing.T) {
	t.Parallel()

	l := newLocalizer(t, false)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"root relative", "/about", "https://example.com/about"},
		{"relative", "about", "https://example.com/about"},
		{"empty", "", "https://example.com/"},
		{"absolute untouched", "https://cdn.example.org/a", "https://cdn.example.org/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, l.Absolute(tt.in))
		})
	}
}

func TestLocalizer_Absolute_BasePath(t *testing.T) {
	t.Parallel()

	l, err := locale.New("https://example.com/shop/")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/shop/sitemap_files/Post.xml", l.Absolute("sitemap_files/Post.xml"))
}

func TestLocalizer_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("explicit locale replaces embedded one", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/fr/products/shoe", l.Resolve("/en/products/shoe", "fr"))
	})

	t.Run("explicit locale on absolute input", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/de/products/shoe", l.Resolve("https://old.example.com/en/products/shoe", "de"))
	})

	t.Run("default locale when enabled", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/en/products/shoe", l.Resolve("/fr/products/shoe", ""))
	})

	t.Run("bare path when disabled", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, false)
		require.Equal(t, "https://example.com/products/shoe", l.Resolve("/de/products/shoe", ""))
	})

	t.Run("keeps query string", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/fr/search?q=shoe&page=2", l.Resolve("/en/search?q=shoe&page=2", "fr"))
	})

	t.Run("unknown first segment kept", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/fr/es/products", l.Resolve("/es/products", "fr"))
	})

	t.Run("only the first segment is stripped", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/fr/blog/en", l.Resolve("/blog/en", "fr"))
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/fr", l.Resolve("https://example.com", "fr"))
	})

	t.Run("locale segment only", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/de/", l.Resolve("/en/", "de"))
	})

	t.Run("case insensitive match", func(t *testing.T) {
		t.Parallel()
		l := newLocalizer(t, true)
		require.Equal(t, "https://example.com/fr/about", l.Resolve("/EN/about", "fr"))
	})
}

func TestLocalizer_Resolve_BasePath(t *testing.T) {
	t.Parallel()

	l, err := locale.New("https://example.com/shop",
		locale.WithLocalization(true),
		locale.WithDefault("en"),
		locale.WithLocales("en", "fr"),
	)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		lang string
		want string
	}{
		{"site path", "/about", "", "https://example.com/shop/en/about"},
		{"absolute on base", "https://example.com/shop/about", "fr", "https://example.com/shop/fr/about"},
		{"embedded locale after base path", "https://example.com/shop/fr/about", "", "https://example.com/shop/en/about"},
		{"base itself", "https://example.com/shop", "fr", "https://example.com/shop/fr"},
		{"prefix lookalike kept", "https://example.com/shopping/cart", "fr", "https://example.com/shop/fr/shopping/cart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, l.Resolve(tt.raw, tt.lang))
		})
	}
}

func TestLocalizer_OnSite(t *testing.T) {
	t.Parallel()

	l := newLocalizer(t, true)
	require.True(t, l.OnSite("/about"))
	require.True(t, l.OnSite("about"))
	require.True(t, l.OnSite("https://EXAMPLE.com/about"))
	require.False(t, l.OnSite("https://cdn.example.org/a.pdf"))
}
