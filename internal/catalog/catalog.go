package catalog

import "fmt"

// Catalog owns the immutable card collection for a session and answers
// filter and slug-lookup queries.
type Catalog struct {
	cards  []Card
	bySlug map[string]int
}

// New validates the cards and builds the slug index. Duplicate slugs are a
// configuration fault in the deck file and fail the load.
func New(cards []Card) (*Catalog, error) {
	c := &Catalog{
		cards:  cards,
		bySlug: make(map[string]int, len(cards)),
	}
	for i, card := range cards {
		if err := card.validate(); err != nil {
			return nil, err
		}
		if prev, ok := c.bySlug[card.Slug]; ok {
			return nil, fmt.Errorf("duplicate slug %q (cards %d and %d)", card.Slug, prev, i)
		}
		c.bySlug[card.Slug] = i
	}
	return c, nil
}

// Len returns the size of the collection.
func (c *Catalog) Len() int { return len(c.cards) }

// Cards returns the collection in load order. Callers must not mutate it.
func (c *Catalog) Cards() []Card { return c.cards }

// At returns the card at the given load-order index.
func (c *Catalog) At(i int) (Card, bool) {
	if i < 0 || i >= len(c.cards) {
		return Card{}, false
	}
	return c.cards[i], true
}

// Entry pairs a card with its load-order index so views can refer back to
// the collection position after filtering.
type Entry struct {
	Index int
	Card  Card
}

// Filter returns the cards passing the type and search predicates, in load
// order. Results are filtered, never re-sorted or scored.
func (c *Catalog) Filter(typeFilter, searchText string) []Entry {
	out := make([]Entry, 0, len(c.cards))
	for i, card := range c.cards {
		if card.Matches(typeFilter, searchText) {
			out = append(out, Entry{Index: i, Card: card})
		}
	}
	return out
}

// FindBySlug resolves a deep-link slug to its card. The match is exact and
// case-sensitive.
func (c *Catalog) FindBySlug(slug string) (Card, int, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Card{}, -1, false
	}
	return c.cards[i], i, true
}

// Types lists the distinct card types in first-seen order, for building the
// per-type filter controls.
func (c *Catalog) Types() []string {
	seen := make(map[Type]bool, 4)
	out := make([]string, 0, 4)
	for _, card := range c.cards {
		if !seen[card.Type] {
			seen[card.Type] = true
			out = append(out, string(card.Type))
		}
	}
	return out
}
