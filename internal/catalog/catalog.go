// Package catalog holds the known tradable item list
package catalog

import "strings"

// Item is one tradable entry from the market catalog. Vaulted items are no
// longer obtainable from relics, which makes them worth flagging in the
// reward display.
type Item struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Ducats  int    `json:"ducats"`
	Vaulted bool   `json:"vaulted"`
}

// Catalog is an immutable snapshot of known items, indexed by folded name.
type Catalog struct {
	items  []Item
	byName map[string]Item
}

// New builds a catalog from items. Later duplicates by folded name win.
func New(items []Item) *Catalog {
	byName := make(map[string]Item, len(items))
	for _, it := range items {
		byName[strings.ToLower(it.Name)] = it
	}
	return &Catalog{items: items, byName: byName}
}

// Names returns all item names, in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.items))
	for i, it := range c.items {
		names[i] = it.Name
	}
	return names
}

// Lookup finds an item by name, case-insensitively.
func (c *Catalog) Lookup(name string) (Item, bool) {
	it, ok := c.byName[strings.ToLower(name)]
	return it, ok
}

// Len reports the number of items.
func (c *Catalog) Len() int { return len(c.items) }
