// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// esearchResponse is the retmode=json esearch body. Result is a pointer so
// a response without "esearchresult" decodes to nil instead of failing.
type esearchResponse struct {
	Result *struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// Search runs query against PubMed and returns at most
// types.MaxSearchResults identifiers in relevance order. Duplicate
// identifiers are dropped, keeping the first occurrence. A response without
// an id list yields an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	reqURL := c.endpoint("esearch.fcgi", url.Values{
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {strconv.Itoa(types.MaxSearchResults)},
	})

	body, err := httputil.Get(ctx, c.HTTP, reqURL, c.Cfg.UserAgent, c.Log)
	if err != nil {
		return nil, fmt.Errorf("esearch: %w", err)
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("esearch: %w: %v", ErrParse, err)
	}
	if resp.Result == nil {
		c.Log.Debug().Str("query", query).Msg("esearch response has no result")
		return []string{}, nil
	}

	c.Log.Debug().
		Str("query", query).
		Str("count", resp.Result.Count).
		Int("returned", len(resp.Result.IDList)).
		Msg("esearch")

	return uniqueIDs(resp.Result.IDList, types.MaxSearchResults), nil
}

// uniqueIDs drops blank and repeated identifiers and caps the result at max.
func uniqueIDs(ids []string, max int) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == max {
			break
		}
	}
	return out
}
