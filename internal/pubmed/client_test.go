// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

const sampleEfetchXML = `<?xml version="1.0" ?>
<!DOCTYPE PubmedArticleSet PUBLIC "-//NLM//DTD PubMedArticle, 1st January 2025//EN" "https://dtd.nlm.nih.gov/ncbi/pubmed/out/pubmed_250101.dtd">
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">31452104</PMID>
      <Article PubModel="Print">
        <Journal>
          <JournalIssue CitedMedium="Internet">
            <Volume>575</Volume>
            <PubDate><Year>2019</Year><Month>Nov</Month></PubDate>
          </JournalIssue>
          <Title>Nature</Title>
        </Journal>
        <ArticleTitle>Targeting KRAS in solid tumours</ArticleTitle>
        <AuthorList CompleteYN="Y">
          <Author ValidYN="Y">
            <LastName>Jones</LastName><ForeName>Ann</ForeName>
            <AffiliationInfo><Affiliation>Acme Biotech Inc, Boston, MA<Email>jones@acme.com</Email></Affiliation></AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Patel</LastName><ForeName>Raj</ForeName>
            <AffiliationInfo><Affiliation>Department of Oncology, University of Cambridge</Affiliation></AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Okafor</LastName><ForeName>Chidi</ForeName>
            <AffiliationInfo><Affiliation>Genfield Pharma Ltd, Basel</Affiliation></AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Lee</LastName><ForeName>Min</ForeName>
            <AffiliationInfo><Affiliation>Boston Children's Hospital<Email>lee@uni.edu</Email></Affiliation></AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Novak</LastName><ForeName>Eva</ForeName>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

const sampleEsearchJSON = `{
  "header": {"type": "esearch", "version": "0.3"},
  "esearchresult": {
    "count": "1523",
    "retmax": "10",
    "retstart": "0",
    "idlist": ["31452104", "30000001", "31452104", "29999999"]
  }
}`

// eutilsServer serves esearch and efetch, recording the last query of each.
type eutilsServer struct {
	*httptest.Server
	esearchStatus int
	esearchBody   string
	efetchStatus  map[string]int
	efetchBody    map[string]string
	lastSearch    url.Values
	fetched       []string
}

func newEutilsServer(t *testing.T) *eutilsServer {
	t.Helper()
	s := &eutilsServer{
		esearchStatus: http.StatusOK,
		esearchBody:   sampleEsearchJSON,
		efetchStatus:  map[string]int{},
		efetchBody:    map[string]string{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch r.URL.Path {
		case "/esearch.fcgi":
			s.lastSearch = q
			w.WriteHeader(s.esearchStatus)
			fmt.Fprint(w, s.esearchBody)
		case "/efetch.fcgi":
			id := q.Get("id")
			s.fetched = append(s.fetched, id)
			if code, ok := s.efetchStatus[id]; ok {
				w.WriteHeader(code)
				return
			}
			body, ok := s.efetchBody[id]
			if !ok {
				body = sampleEfetchXML
			}
			w.Header().Set("Content-Type", "text/xml")
			fmt.Fprint(w, body)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func testClient(s *eutilsServer) *Client {
	return &Client{
		HTTP: s.Client(),
		Cfg: types.PubMedConfig{
			HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "test/0.1"},
			BaseURL:    s.URL,
		},
		Log: zerolog.Nop(),
	}
}

// --- Search ---

func TestSearch(t *testing.T) {
	s := newEutilsServer(t)
	c := testClient(s)

	ids, err := c.Search(context.Background(), "KRAS inhibitors")
	require.NoError(t, err)

	assert.Equal(t, []string{"31452104", "30000001", "29999999"}, ids)
	assert.Equal(t, "pubmed", s.lastSearch.Get("db"))
	assert.Equal(t, "KRAS inhibitors", s.lastSearch.Get("term"))
	assert.Equal(t, "json", s.lastSearch.Get("retmode"))
	assert.Equal(t, "10", s.lastSearch.Get("retmax"))
	assert.Empty(t, s.lastSearch.Get("email"))
}

func TestSearch_ToolAndEmail(t *testing.T) {
	s := newEutilsServer(t)
	c := testClient(s)
	c.Cfg.Tool = "get-papers-list"
	c.Cfg.Email = "me@example.com"

	_, err := c.Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "get-papers-list", s.lastSearch.Get("tool"))
	assert.Equal(t, "me@example.com", s.lastSearch.Get("email"))
}

func TestSearch_CapsAtMaxResults(t *testing.T) {
	s := newEutilsServer(t)
	s.esearchBody = `{"esearchresult": {"idlist": ["1","2","3","4","5","6","7","8","9","10","11","12"]}}`

	ids, err := testClient(s).Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Len(t, ids, types.MaxSearchResults)
	assert.Equal(t, "10", ids[9])
}

func TestSearch_MissingResultIsEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"no esearchresult": `{"header": {"type": "esearch"}}`,
		"no idlist":        `{"esearchresult": {"count": "0"}}`,
		"empty idlist":     `{"esearchresult": {"idlist": []}}`,
	} {
		t.Run(name, func(t *testing.T) {
			s := newEutilsServer(t)
			s.esearchBody = body

			ids, err := testClient(s).Search(context.Background(), "nothing")
			require.NoError(t, err)
			assert.NotNil(t, ids)
			assert.Empty(t, ids)
		})
	}
}

func TestSearch_TransportFailure(t *testing.T) {
	s := newEutilsServer(t)
	s.esearchStatus = http.StatusServiceUnavailable

	_, err := testClient(s).Search(context.Background(), "x")
	var se *httputil.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
}

func TestSearch_ParseFailure(t *testing.T) {
	s := newEutilsServer(t)
	s.esearchBody = `<html>not json</html>`

	_, err := testClient(s).Search(context.Background(), "x")
	assert.ErrorIs(t, err, ErrParse)
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := newEutilsServer(t)

	_, err := testClient(s).Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Nil(t, s.lastSearch, "no request should be sent")
}

// --- FetchDetail ---

func TestFetchDetail(t *testing.T) {
	s := newEutilsServer(t)

	rec, err := testClient(s).FetchDetail(context.Background(), "31452104")
	require.NoError(t, err)

	assert.Equal(t, "31452104", rec.PubmedID)
	assert.Equal(t, "Targeting KRAS in solid tumours", rec.Title)
	assert.Equal(t, "2019", rec.PublicationDate)
	assert.Equal(t, "Jones, Okafor", rec.NonAcademicAuthors)
	assert.Equal(t, []string{"31452104"}, s.fetched)
}

func TestFetchDetail_TransportFailure(t *testing.T) {
	s := newEutilsServer(t)
	s.efetchStatus["2"] = http.StatusInternalServerError

	_, err := testClient(s).FetchDetail(context.Background(), "2")
	var se *httputil.StatusError
	require.True(t, errors.As(err, &se))
	assert.Contains(t, err.Error(), "efetch 2")
}

func TestFetchDetail_ParseFailure(t *testing.T) {
	for name, body := range map[string]string{
		"truncated": `<PubmedArticleSet><PubmedArticle>`,
		"wrong root": `<html><body>Service unavailable</body></html>`,
		"empty":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			s := newEutilsServer(t)
			s.efetchBody["3"] = body

			_, err := testClient(s).FetchDetail(context.Background(), "3")
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(types.PubMedConfig{HTTPConfig: types.HTTPConfig{Timeout: 3 * time.Second}}, zerolog.Nop())
	assert.Equal(t, DefaultBaseURL, c.Cfg.BaseURL)
	assert.Equal(t, 3*time.Second, c.HTTP.Timeout)

	u := c.endpoint("efetch.fcgi", url.Values{"id": {"1"}})
	assert.Equal(t, DefaultBaseURL+"/efetch.fcgi?db=pubmed&id=1", u)
}
