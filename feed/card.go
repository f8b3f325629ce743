package feed

import (
	"davenews/media"
	"davenews/types"
)

// Card is an article ready to render, with its media classification
type Card struct {
	Article types.Article `json:"article"`
	Media   media.Type    `json:"media"`
	Style   media.Style   `json:"style"`
}

// NewCard classifies a single article
func NewCard(a types.Article) Card {
	t := media.Classify(a.URL)
	return Card{Article: a, Media: t, Style: media.StyleFor(t)}
}

// Cards classifies articles in order. The result is never nil.
func Cards(articles []types.Article) []Card {
	cards := make([]Card, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, NewCard(a))
	}
	return cards
}
