package catalog

import (
	"fmt"
	"strings"
)

// Type discriminates which optional card fields are meaningful and which
// detail variant the modal renders.
type Type string

const (
	TypeFunction   Type = "Function"
	TypeVocabulary Type = "Vocabulary"
	TypeIdioms     Type = "Idioms"
	TypeDare       Type = "Dare"
)

// AllTypes is the filter value that matches every card type.
const AllTypes = "All"

// Card is one catalog entry. The collection is loaded once per session and
// never mutated; Slug is the stable identifier used for deep links.
type Card struct {
	Slug  string `json:"slug"`
	Type  Type   `json:"type"`
	Name  string `json:"name"`
	Image string `json:"img"`
	Desc  string `json:"desc"`

	// Generic fallback body for non-vocabulary variants.
	Detail string `json:"detail,omitempty"`

	// Vocabulary only. Pronounce is an IPA string; Audio points at an
	// optional recorded pronunciation asset.
	Pronounce string `json:"pronounce,omitempty"`
	Audio     string `json:"audio,omitempty"`
	Level     string `json:"level,omitempty"`

	// Vocabulary and Idioms.
	Meaning string `json:"meaning,omitempty"`
	Example string `json:"example,omitempty"`

	// Dare only.
	Hint string `json:"hint,omitempty"`
}

// validate enforces the fields each variant requires. It runs once at the
// load boundary, not per render.
func (c Card) validate() error {
	if strings.TrimSpace(c.Slug) == "" {
		return fmt.Errorf("card %q: missing slug", c.Name)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("card %q: missing name", c.Slug)
	}
	if c.Type == "" {
		return fmt.Errorf("card %q: missing type", c.Slug)
	}
	switch c.Type {
	case TypeVocabulary:
		if c.Meaning == "" {
			return fmt.Errorf("vocabulary card %q: missing meaning", c.Slug)
		}
	case TypeIdioms:
		if c.Meaning == "" && c.Desc == "" {
			return fmt.Errorf("idiom card %q: missing meaning and description", c.Slug)
		}
	}
	return nil
}

// Matches reports whether the card passes the given type filter and search
// text. Search is a case-insensitive substring test against name, desc and
// slug; empty search always passes.
func (c Card) Matches(typeFilter, searchText string) bool {
	if typeFilter != AllTypes && typeFilter != "" && string(c.Type) != typeFilter {
		return false
	}
	if searchText == "" {
		return true
	}
	needle := strings.ToLower(searchText)
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Desc), needle) ||
		strings.Contains(strings.ToLower(c.Slug), needle)
}
