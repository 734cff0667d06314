package catalog

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/brewsim/coffeeshop/core"
)

var errInvalidKind = errors.New("catalog: invalid item kind")

const resolverCacheSize = 256

// Catalog is the read-only menu plus a resolver that maps external item
// identifiers onto menu entries. Successful resolutions are cached because
// the same handful of identifiers arrives with every order.
type Catalog struct {
	items []Item
	cache *lru.Cache
}

func New(itemSets ...[]Item) *Catalog {
	cache, err := lru.New(resolverCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}

	c := &Catalog{cache: cache}
	for _, items := range itemSets {
		c.items = append(c.items, items...)
	}
	return c
}

func Default() *Catalog {
	return New(DefaultCoffeeMenu(), DefaultBakeryMenu())
}

func (c *Catalog) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Catalog) ByKind(kind Kind) []Item {
	var items []Item
	for _, item := range c.items {
		if item.Kind == kind {
			items = append(items, item)
		}
	}
	return items
}

// ByCategory groups one kind's items for menu display.
func (c *Catalog) ByCategory(kind Kind) map[string][]Item {
	categories := map[string][]Item{}
	for _, item := range c.ByKind(kind) {
		categories[item.Category] = append(categories[item.Category], item)
	}
	return categories
}

// Search matches the query against item names, categories and descriptions.
func (c *Catalog) Search(query string) []Item {
	var results []Item
	q := strings.ToLower(query)
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Category), q) ||
			strings.Contains(strings.ToLower(item.Description), q) {
			results = append(results, item)
		}
	}
	return results
}

// matchFunc reports whether a canonicalized identifier names the given item.
// Strategies are tried in order and the first hit wins.
type matchFunc func(id string, item Item) bool

var strategies = []matchFunc{
	matchExactID,
	matchExactName,
	matchNormalized,
	matchComponents,
}

// Resolve maps an external identifier onto a menu item of the given kind.
// It tries, in order: exact ID match, exact case-insensitive name match,
// underscore/space normalization, then component fuzzy matching where all
// but at most one token of the identifier must appear in the item name.
func (c *Catalog) Resolve(kind Kind, id string) (Item, error) {
	const funcName = "Resolve"

	cacheKey := string(kind) + "|" + id
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(Item), nil
	}

	canonical := strings.ToLower(strings.TrimSpace(id))
	for _, match := range strategies {
		for _, item := range c.items {
			if item.Kind != kind {
				continue
			}
			if match(canonical, item) {
				log.Debug().
					Str("func", funcName).
					Str("id", id).
					Str("item", item.Name).
					Msg("resolved item")
				c.cache.Add(cacheKey, item)
				return item, nil
			}
		}
	}

	log.Debug().Str("func", funcName).Str("id", id).Msg("no matching item")
	return Item{}, errors.WithStack(core.ErrItemNotFound)
}

func matchExactID(id string, item Item) bool {
	return item.ID == id
}

func matchExactName(id string, item Item) bool {
	return strings.ToLower(item.Name) == id
}

func matchNormalized(id string, item Item) bool {
	return strings.ToLower(item.Name) == strings.ReplaceAll(id, "_", " ")
}

func matchComponents(id string, item Item) bool {
	components := strings.Fields(strings.ReplaceAll(id, "_", " "))
	if len(components) == 0 {
		return false
	}

	name := strings.ToLower(item.Name)
	matched := 0
	for _, component := range components {
		if strings.Contains(name, component) {
			matched++
		}
	}
	return matched >= len(components)-1
}

// RecipeFor returns the combined ingredient requirements of an item, with
// names sorted for deterministic iteration by callers that log per item.
func RecipeFor(item Item) (names []string, quantities map[string]int64) {
	quantities = item.Ingredients
	for name := range quantities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, quantities
}
