package internal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitemap/pkg/locale"
)

func newRenderer(t *testing.T, localized, useLastMod bool) renderer {
	t.Helper()

	opts := []locale.Option{locale.WithLocalization(localized)}
	if localized {
		opts = append(opts, locale.WithDefault("en"), locale.WithLocales("en", "fr", "de"))
	}
	l, err := locale.New("https://example.com", opts...)
	require.NoError(t, err)

	return renderer{localizer: l, layout: time.RFC3339, useLastMod: useLastMod}
}

func TestRenderer_LastModChain(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, false, true)
	data, err := r.render([]Item{
		{URL: "/a"},
		{URL: "/b", LastMod: "2020-01-01"},
		{URL: "/c"},
		{URL: "/d", LastMod: "2021-06-01"},
		{URL: "/e"},
	}, frozen)
	require.NoError(t, err)

	doc := decodeURLSet(t, data)
	require.Len(t, doc.URLs, 5)

	got := make([]string, 0, len(doc.URLs))
	for _, u := range doc.URLs {
		got = append(got, u.LastMod)
	}
	require.Equal(t, []string{
		"2024-05-01T12:00:00Z",
		"2020-01-01",
		"2020-01-01",
		"2021-06-01",
		"2021-06-01",
	}, got)
}

func TestRenderer_LastModDisabled(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, false, false)
	data, err := r.render([]Item{{URL: "/a", LastMod: "2020-01-01"}, {URL: "/b"}}, frozen)
	require.NoError(t, err)
	require.NotContains(t, string(data), "<lastmod>")
}

func TestRenderer_Locations(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, false, true)
	data, err := r.render([]Item{
		{URL: "/about"},
		{URL: "https://example.com/already"},
		{URL: "https://cdn.example.com/file.pdf"},
	}, frozen)
	require.NoError(t, err)

	s := string(data)
	require.True(t, strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, s, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	require.NotContains(t, s, "xmlns:xhtml")
	require.NotContains(t, s, "xhtml:link")

	doc := decodeURLSet(t, data)
	require.Equal(t, "https://example.com/about", doc.URLs[0].Loc)
	require.Equal(t, "https://example.com/already", doc.URLs[1].Loc)
	require.Equal(t, "https://cdn.example.com/file.pdf", doc.URLs[2].Loc)
}

func TestRenderer_Localized(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, true, false)
	data, err := r.render([]Item{{URL: "/fr/products/shoe?color=red"}}, frozen)
	require.NoError(t, err)

	s := string(data)
	require.Contains(t, s, `xmlns:xhtml="http://www.w3.org/1999/xhtml"`)
	require.Contains(t, s, `<xhtml:link rel="alternate" hreflang="fr" href="https://example.com/fr/products/shoe?color=red"></xhtml:link>`)

	doc := decodeURLSet(t, data)
	require.Len(t, doc.URLs, 1)
	u := doc.URLs[0]
	require.Equal(t, "https://example.com/en/products/shoe?color=red", u.Loc)

	require.Len(t, u.Alternates, 3)
	langs := []string{}
	for _, a := range u.Alternates {
		require.Equal(t, "alternate", a.Rel)
		require.Equal(t, "https://example.com/"+a.Hreflang+"/products/shoe?color=red", a.Href)
		langs = append(langs, a.Hreflang)
	}
	require.Equal(t, []string{"en", "de", "fr"}, langs)
}

func TestRenderer_Deterministic(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, true, true)
	items := []Item{{URL: "/a"}, {URL: "/b", LastMod: "2020-01-01"}}

	first, err := r.render(items, frozen)
	require.NoError(t, err)
	second, err := r.render(items, frozen)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRenderer_Empty(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, false, true)
	data, err := r.render(nil, frozen)
	require.NoError(t, err)
	require.Empty(t, decodeURLSet(t, data).URLs)
}

func TestRenderer_LocalizedBasePath(t *testing.T) {
	t.Parallel()

	l, err := locale.New("https://example.com/shop",
		locale.WithLocalization(true),
		locale.WithDefault("en"),
		locale.WithLocales("en", "fr"),
	)
	require.NoError(t, err)

	col := newCollection(l, "custom", 10).Attach("/about", "")
	groups := col.Groups()
	require.Len(t, groups, 1)

	r := renderer{localizer: l, layout: time.RFC3339}
	data, err := r.render(groups[0].Items, frozen)
	require.NoError(t, err)

	doc := decodeURLSet(t, data)
	require.Len(t, doc.URLs, 1)
	u := doc.URLs[0]
	require.Equal(t, "https://example.com/shop/en/about", u.Loc)
	require.Len(t, u.Alternates, 2)
	require.Equal(t, "https://example.com/shop/en/about", u.Alternates[0].Href)
	require.Equal(t, "https://example.com/shop/fr/about", u.Alternates[1].Href)
}

func TestRenderer_LocalizedOffSite(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, true, false)
	data, err := r.render([]Item{
		{URL: "https://cdn.example.org/brochure.pdf"},
		{URL: "https://example.com/fr/about"},
	}, frozen)
	require.NoError(t, err)

	doc := decodeURLSet(t, data)
	require.Len(t, doc.URLs, 2)
	require.Equal(t, "https://cdn.example.org/brochure.pdf", doc.URLs[0].Loc)
	require.Empty(t, doc.URLs[0].Alternates)
	require.Equal(t, "https://example.com/en/about", doc.URLs[1].Loc)
	require.Len(t, doc.URLs[1].Alternates, 3)
}
