package newsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"davenews/types"
)

// providerResponse is the NewsAPI envelope. Articles is a pointer so that a
// body without the field can be told apart from an empty list.
type providerResponse struct {
	Status       string             `json:"status"`
	Code         string             `json:"code"`
	Message      string             `json:"message"`
	TotalResults int                `json:"totalResults"`
	Articles     *[]providerArticle `json:"articles"`
}

// providerArticle mirrors the provider's article record. JSON null decodes to "".
type providerArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

var errMissingArticles = errors.New(`response has no "articles" field`)

// getArticles performs a GET against path with the given query parameters
// plus the API key, and normalizes the returned articles.
func (c *Client) getArticles(ctx context.Context, op, path string, params map[string]string) ([]types.Article, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("apiKey", c.cfg.APIKey).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s: send request: %w", op, err)
	}

	if !resp.IsSuccess() {
		fetchErr := &FetchError{Op: op, StatusCode: resp.StatusCode()}
		var body providerResponse
		if json.Unmarshal(resp.Body(), &body) == nil {
			fetchErr.Code = body.Code
			fetchErr.Message = body.Message
		}
		return nil, fetchErr
	}

	var body providerResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	if body.Articles == nil {
		return nil, &ParseError{Op: op, Err: errMissingArticles}
	}

	return normalize(*body.Articles), nil
}

// normalize maps provider records onto the internal article shape, assigning
// ids by position and publish time.
func normalize(records []providerArticle) []types.Article {
	articles := make([]types.Article, 0, len(records))
	for i, r := range records {
		articles = append(articles, types.Article{
			ID:          types.GenerateID(i, r.PublishedAt),
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			PublishedAt: r.PublishedAt,
			Source: types.Source{
				ID:   r.Source.ID,
				Name: r.Source.Name,
			},
			URLToImage: r.URLToImage,
			Author:     r.Author,
			Content:    r.Content,
		})
	}
	return articles
}
