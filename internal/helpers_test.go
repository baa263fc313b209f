package internal

import (
	"context"
	"encoding/xml"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitemap/pkg/storage"
)

var frozen = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func frozenClock() time.Time { return frozen }

// memStorage is an in-memory storage.Storage with optional failure injection.
type memStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	putErr  error
	clears  int
	cleared []string
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}}
}

func (m *memStorage) Put(_ context.Context, key string, data []byte, _ ...storage.Option) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.files[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStorage) List(_ context.Context, dir string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for k := range m.files {
		rest, ok := strings.CutPrefix(k, dir+"/")
		if !ok || strings.Contains(rest, "/") || strings.HasPrefix(rest, ".") {
			continue
		}
		names = append(names, rest)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memStorage) Clear(_ context.Context, dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	m.cleared = append(m.cleared, dir)
	for k := range m.files {
		if strings.HasPrefix(k, dir+"/") {
			delete(m.files, k)
		}
	}
	return nil
}

func (m *memStorage) file(t *testing.T, key string) []byte {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	require.True(t, ok, "missing file %s", key)
	return data
}

// Decoding targets. Prefixed names are resolved to namespaces on decode.
type decodedURLSet struct {
	URLs []struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		Alternates []struct {
			Rel      string `xml:"rel,attr"`
			Hreflang string `xml:"hreflang,attr"`
			Href     string `xml:"href,attr"`
		} `xml:"http://www.w3.org/1999/xhtml link"`
	} `xml:"url"`
}

type decodedIndex struct {
	Sitemaps []struct {
		Loc string `xml:"loc"`
	} `xml:"sitemap"`
}

func decodeURLSet(t *testing.T, data []byte) decodedURLSet {
	t.Helper()
	var v decodedURLSet
	require.NoError(t, xml.Unmarshal(data, &v))
	return v
}

func decodeIndex(t *testing.T, data []byte) []string {
	t.Helper()
	var v decodedIndex
	require.NoError(t, xml.Unmarshal(data, &v))
	locs := make([]string, 0, len(v.Sitemaps))
	for _, s := range v.Sitemaps {
		locs = append(locs, s.Loc)
	}
	return locs
}

// fakeLocker records lock calls and can refuse them.
type fakeLocker struct {
	mu       sync.Mutex
	err      error
	locked   int
	released int
}

func (f *fakeLocker) Lock(context.Context, string) (func(context.Context) error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.locked++
	return func(context.Context) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.released++
		return nil
	}, nil
}

var errBoom = errors.New("boom")
