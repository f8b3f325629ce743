package types

import (
	"fmt"
	"time"
)

// Source identifies the publisher of an article
type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article is the normalized article shape shared by the news client and the feed view.
// Title and Description may be empty when the provider sends null.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      Source `json:"source"`
	URLToImage  string `json:"urlToImage,omitempty"`
	Author      string `json:"author,omitempty"`
	Content     string `json:"content,omitempty"`
}

// GenerateID builds the list-local article id from its position in the
// provider response and its publish timestamp.
func GenerateID(index int, publishedAt string) string {
	return fmt.Sprintf("%d-%s", index, publishedAt)
}

// PublishedTime parses PublishedAt as RFC 3339. ok is false when the provider
// sent something else.
func (a Article) PublishedTime() (t time.Time, ok bool) {
	t, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PublishedDate returns the publish date for display, falling back to the raw value
func (a Article) PublishedDate() string {
	if t, ok := a.PublishedTime(); ok {
		return t.Format("Jan 2, 2006")
	}
	return a.PublishedAt
}
