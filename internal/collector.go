package internal

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/sitemap/pkg/locale"
	"github.com/dmitrymomot/sitemap/pkg/source"
)

// Item is a single sitemap URL. An empty LastMod means the date is unknown.
type Item struct {
	URL     string
	LastMod string
}

// Group is a named run of items written to one sitemap file.
type Group struct {
	Name  string
	Items []Item
}

// Collection holds the items gathered for one generation run.
// It is not safe for concurrent use.
type Collection struct {
	localizer  *locale.Localizer
	groups     []Group
	custom     []Item
	customName string
	maxTags    int
}

func newCollection(l *locale.Localizer, customName string, maxTags int) *Collection {
	return &Collection{
		localizer:  l,
		customName: customName,
		maxTags:    maxTags,
	}
}

// Attach adds a one-off path to the custom group. The path is resolved
// to an absolute URL right away. lastmod may be empty.
func (c *Collection) Attach(path, lastmod string) *Collection {
	c.custom = append(c.custom, Item{
		URL:     c.localizer.Absolute(path),
		LastMod: lastmod,
	})
	return c
}

// Groups returns source groups in collection order followed by the custom
// group, split with the same naming rule.
func (c *Collection) Groups() []Group {
	out := make([]Group, 0, len(c.groups)+1)
	out = append(out, c.groups...)
	return append(out, shard(c.customName, c.custom, c.maxTags)...)
}

// Len returns the total number of items.
func (c *Collection) Len() int {
	n := len(c.custom)
	for _, g := range c.groups {
		n += len(g.Items)
	}
	return n
}

func (c *Collection) add(groups ...Group) {
	c.groups = append(c.groups, groups...)
}

// collectSource reads every entry of src in batches of chunkSize.
// Entries without a URL are dropped.
func collectSource(ctx context.Context, src source.Source, chunkSize int, layout string) ([]Item, error) {
	var items []Item
	err := src.Chunk(ctx, chunkSize, func(batch []source.Entry) error {
		for _, e := range batch {
			u := e.SitemapURL()
			if u == "" {
				continue
			}
			items = append(items, Item{
				URL:     u,
				LastMod: formatLastMod(e.SitemapLastModified(), layout),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceFailed, src.Name(), err)
	}
	return items, nil
}

// shard splits items into consecutive groups of at most size items.
// The first group is named name, the following ones name_1, name_2 and so on.
func shard(name string, items []Item, size int) []Group {
	if len(items) == 0 {
		return nil
	}
	groups := make([]Group, 0, (len(items)+size-1)/size)
	for i := 0; i*size < len(items); i++ {
		end := min((i+1)*size, len(items))
		groups = append(groups, Group{
			Name:  groupName(name, i),
			Items: items[i*size : end],
		})
	}
	return groups
}

func groupName(name string, i int) string {
	if i == 0 {
		return name
	}
	return name + "_" + strconv.Itoa(i)
}

func formatLastMod(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
