// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// FetchDocument retrieves and decodes the efetch XML for one identifier.
func (c *Client) FetchDocument(ctx context.Context, id string) (*Document, error) {
	reqURL := c.endpoint("efetch.fcgi", url.Values{
		"id":      {id},
		"retmode": {"xml"},
	})

	body, err := httputil.Get(ctx, c.HTTP, reqURL, c.Cfg.UserAgent, c.Log)
	if err != nil {
		return nil, fmt.Errorf("efetch %s: %w", id, err)
	}

	doc, err := ParseDocument(body)
	if err != nil {
		return nil, fmt.Errorf("efetch %s: %w: %v", id, ErrParse, err)
	}
	return doc, nil
}

// FetchDetail fetches one article and builds its report record.
func (c *Client) FetchDetail(ctx context.Context, id string) (types.Record, error) {
	doc, err := c.FetchDocument(ctx, id)
	if err != nil {
		return types.Record{}, err
	}
	rec := BuildRecord(doc, id)
	c.Log.Debug().
		Str("pmid", id).
		Int("articles", len(doc.Articles)).
		Int("book_articles", len(doc.BookArticles)).
		Str("non_academic", rec.NonAcademicAuthors).
		Msg("efetch")
	return rec, nil
}
