package internal

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/dmitrymomot/sitemap/pkg/locale"
)

// XML namespaces used in generated documents.
const (
	SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	XHTMLNamespace   = "http://www.w3.org/1999/xhtml"
)

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	XHTML   string     `xml:"xmlns:xhtml,attr,omitempty"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	Alternates []alternate `xml:"xhtml:link"`
}

type alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// renderer turns one group into a urlset document.
type renderer struct {
	localizer  *locale.Localizer
	layout     string
	useLastMod bool
}

// render builds the document for items. now seeds the lastmod carried
// forward to items without their own date; each dated item replaces it.
func (r renderer) render(items []Item, now time.Time) ([]byte, error) {
	doc := urlSet{
		XMLNS: SitemapNamespace,
		URLs:  make([]urlEntry, 0, len(items)),
	}
	localized := r.localizer.Enabled()
	if localized {
		doc.XHTML = XHTMLNamespace
	}

	current := now.Format(r.layout)
	for _, it := range items {
		entry := urlEntry{Loc: r.location(it.URL)}

		if localized && r.localizer.OnSite(it.URL) {
			for _, lang := range r.localizer.Languages() {
				entry.Alternates = append(entry.Alternates, alternate{
					Rel:      "alternate",
					Hreflang: lang,
					Href:     r.localizer.Resolve(it.URL, lang),
				})
			}
		}

		lastmod := current
		if it.LastMod != "" {
			lastmod = it.LastMod
			current = it.LastMod
		}
		if r.useLastMod {
			entry.LastMod = lastmod
		}

		doc.URLs = append(doc.URLs, entry)
	}

	return marshalDocument(doc)
}

// location picks the <loc> value for a stored URL. Absolute URLs on
// another host are kept as they are.
func (r renderer) location(u string) string {
	switch {
	case !r.localizer.OnSite(u):
		return u
	case r.localizer.Enabled():
		return r.localizer.Resolve(u, "")
	case strings.HasPrefix(u, "/"):
		return r.localizer.Absolute(u)
	default:
		return u
	}
}

func marshalDocument(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
