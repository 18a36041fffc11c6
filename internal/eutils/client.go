// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API for PubMed articles.
// ESearch resolves a free-text query to PMIDs; EFetch retrieves the full
// bibliographic XML for a batch of PMIDs.
package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute
// httptest servers.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// Client issues E-utilities requests.
type Client struct {
	Client *http.Client

	// SearchBase and FetchBase override the default endpoints when
	// non-empty. Tests point them at local servers.
	SearchBase string
	FetchBase  string
}

func (c *Client) searchBase() string {
	if c.SearchBase != "" {
		return c.SearchBase
	}
	return esearchBase
}

func (c *Client) fetchBase() string {
	if c.FetchBase != "" {
		return c.FetchBase
	}
	return efetchBase
}

// esearch JSON response structures. Only the idlist is consumed.
type esearchResponse struct {
	ESearchResult esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// Search queries the esearch endpoint and returns matching PMIDs in the
// order PubMed returned them. No reordering, no deduplication. An empty
// slice means the query matched nothing.
func (c *Client) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]string, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {strconv.Itoa(maxResults)},
		"retmode": {"json"},
	}
	addIdentification(params, cfg)

	body, err := c.get(ctx, c.searchBase()+"?"+params.Encode(), cfg)
	if err != nil {
		return nil, fmt.Errorf("esearch request: %w", err)
	}
	defer body.Close()

	var er esearchResponse
	if err := json.NewDecoder(body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	return er.ESearchResult.IDList, nil
}

// Fetch retrieves the PubmedArticleSet XML for the given PMIDs in a
// single batch request and returns the response body unmodified. The
// caller must pass at least one identifier.
func (c *Client) Fetch(ctx context.Context, ids []string, cfg types.SearchConfig) ([]byte, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no identifiers to fetch")
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}
	addIdentification(params, cfg)

	body, err := c.get(ctx, c.fetchBase()+"?"+params.Encode(), cfg)
	if err != nil {
		return nil, fmt.Errorf("efetch request: %w", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading efetch response: %w", err)
	}
	return data, nil
}

// get performs one GET and returns the response body on HTTP 200.
func (c *Client) get(ctx context.Context, reqURL string, cfg types.SearchConfig) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// addIdentification appends the optional NCBI politeness parameters.
func addIdentification(params url.Values, cfg types.SearchConfig) {
	if cfg.APIKey != "" {
		params.Set("api_key", cfg.APIKey)
	}
	if cfg.Tool != "" {
		params.Set("tool", cfg.Tool)
	}
	if cfg.Email != "" {
		params.Set("email", cfg.Email)
	}
}
