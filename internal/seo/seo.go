package seo

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}

// ForCards builds page metadata for the catalog page. canonical should be
// the shareable deep-link URL when a card is open.
func ForCards(canonical string) Meta {
	return Meta{
		Title:       "Card Catalog – English Boardgame",
		Description: "Browse the vocabulary, idiom and game-function cards from the English Boardgame box.",
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       "English Boardgame Cards",
			Description: "Browse and pronounce every card in the deck.",
			Type:        "website",
		},
	}
}
