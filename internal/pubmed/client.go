// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed talks to the NCBI E-utilities API: esearch for the
// identifiers matching a query, efetch for the metadata of one article, and
// the record builder that turns that metadata into a report row.
package pubmed

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// DefaultBaseURL is the E-utilities root used when the config leaves it empty.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// database is the only E-utilities database this tool queries.
const database = "pubmed"

var (
	// ErrEmptyQuery is returned by Search for a blank search term.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrParse wraps every malformed response body.
	ErrParse = errors.New("malformed response")
)

// Client issues E-utilities requests one at a time.
type Client struct {
	HTTP *http.Client
	Cfg  types.PubMedConfig
	Log  zerolog.Logger
}

// NewClient builds a Client with an http.Client honouring cfg.Timeout.
func NewClient(cfg types.PubMedConfig, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		Cfg:  cfg,
		Log:  log,
	}
}

// endpoint builds {base}/{name}?params, adding the NCBI tool/email
// identification when configured.
func (c *Client) endpoint(name string, params url.Values) string {
	params.Set("db", database)
	if c.Cfg.Tool != "" {
		params.Set("tool", c.Cfg.Tool)
	}
	if c.Cfg.Email != "" {
		params.Set("email", c.Cfg.Email)
	}
	base := c.Cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + name + "?" + params.Encode()
}
