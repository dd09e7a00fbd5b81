package content

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// TagCount is one entry of the tag index.
type TagCount struct {
	// Name is the case-folded tag as displayed on the tags page.
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Catalog indexes loaded items. It is read-only after NewCatalog.
type Catalog struct {
	items  []*Item
	bySlug map[string]*Item

	tags     []TagCount
	tagSlugs map[string]string // folded name -> page slug
}

// NewCatalog indexes items. When two items share a slug the first one
// wins. Items are ordered newest first, then by title.
func NewCatalog(items ...*Item) *Catalog {
	catalog := &Catalog{bySlug: make(map[string]*Item, len(items))}
	for _, item := range items {
		key := strings.ToLower(item.Slug)
		if _, dup := catalog.bySlug[key]; dup {
			continue
		}
		catalog.bySlug[key] = item
		catalog.items = append(catalog.items, item)
	}

	sort.SliceStable(catalog.items, func(i, j int) bool {
		a, b := catalog.items[i], catalog.items[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Title < b.Title
	})
	catalog.indexTags()
	return catalog
}

// Items returns every item.
func (c *Catalog) Items() []*Item {
	return append([]*Item(nil), c.items...)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// OfKind returns the items of one kind.
func (c *Catalog) OfKind(kind Kind) []*Item {
	return c.Search(Query{Kind: kind})
}

// BySlug looks an item up, ignoring case.
func (c *Catalog) BySlug(s string) (*Item, bool) {
	item, ok := c.bySlug[strings.ToLower(strings.TrimSpace(s))]
	return item, ok
}

// Query filters Search results. Zero fields match everything.
type Query struct {
	// Text must appear in the title or excerpt, ignoring case.
	Text string
	// Tag must be carried by the item, ignoring case.
	Tag  string
	Kind Kind
}

// Search returns the items matching q in catalog order.
func (c *Catalog) Search(q Query) []*Item {
	needle := foldKey(strings.TrimSpace(q.Text))

	var out []*Item
	for _, item := range c.items {
		if q.Kind != "" && item.Kind != q.Kind {
			continue
		}
		if q.Tag != "" && !item.HasTag(q.Tag) {
			continue
		}
		if needle != "" &&
			!strings.Contains(foldKey(item.Title), needle) &&
			!strings.Contains(foldKey(item.Excerpt), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Tags returns every tag with the number of items carrying it. Tags that
// differ only in case are counted together. The index is sorted by name and
// every entry has a distinct Slug.
func (c *Catalog) Tags() []TagCount {
	return append([]TagCount(nil), c.tags...)
}

// TagSlug returns the page slug of tag. Tags whose names normalise to the
// same slug are told apart by a numeric suffix, assigned in name order.
func (c *Catalog) TagSlug(tag string) string {
	if slug, ok := c.tagSlugs[foldKey(tag)]; ok {
		return slug
	}
	return tagSlug(tag)
}

func (c *Catalog) indexTags() {
	counts := map[string]int{}
	for _, item := range c.items {
		seen := map[string]bool{}
		for _, tag := range item.Tags {
			key := foldKey(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			counts[key]++
		}
	}

	c.tags = make([]TagCount, 0, len(counts))
	for name, count := range counts {
		c.tags = append(c.tags, TagCount{Name: name, Count: count})
	}
	sort.Slice(c.tags, func(i, j int) bool { return c.tags[i].Name < c.tags[j].Name })

	c.tagSlugs = make(map[string]string, len(c.tags))
	used := make(map[string]bool, len(c.tags))
	for idx := range c.tags {
		base := tagSlug(c.tags[idx].Name)
		slug := base
		for n := 2; used[slug]; n++ {
			slug = base + "-" + strconv.Itoa(n)
		}
		used[slug] = true
		c.tags[idx].Slug = slug
		c.tagSlugs[c.tags[idx].Name] = slug
	}
}

// RelatedTags returns up to limit other tags, sorted by name.
func (c *Catalog) RelatedTags(tag string, limit int) []TagCount {
	key := foldKey(tag)
	var related []TagCount
	for _, candidate := range c.Tags() {
		if candidate.Name == key {
			continue
		}
		related = append(related, candidate)
		if len(related) == limit {
			break
		}
	}
	return related
}

// tagSlug is the URL segment derived from a tag name alone.
func tagSlug(tag string) string {
	key := foldKey(tag)
	if normalized, err := NormalizeSlug(key); err == nil && normalized != "" {
		return normalized
	}
	return key
}

// foldKey case-folds s for comparisons and the tag index.
func foldKey(s string) string {
	return cases.Fold().String(s)
}
