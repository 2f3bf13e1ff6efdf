// Package ensembl provides a minimal client for the Ensembl REST API.
package ensembl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Default connection parameters. The base URL and species match the
// public Ensembl REST service for human genes.
const (
	DefaultBaseURL = "https://rest.ensembl.org"
	DefaultSpecies = "homo_sapiens"
)

// Client queries the Ensembl REST API for gene cross-references and
// gene details. It holds no state between calls.
type Client struct {
	baseURL    string
	species    string
	httpClient *http.Client
}

// NewClient creates a client for the given species (e.g. "homo_sapiens").
// An empty species defaults to homo_sapiens.
func NewClient(species string) *Client {
	if species == "" {
		species = DefaultSpecies
	}

	return &Client{
		baseURL: DefaultBaseURL,
		species: species,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetBaseURL overrides the Ensembl REST endpoint. Tests use this to point
// the client at an httptest server.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// Species returns the configured species.
func (c *Client) Species() string {
	return c.species
}

// Xref is a cross-reference returned by the symbol search endpoint. It
// links a symbol query to a candidate gene identifier.
type Xref struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Gene is the detailed gene record returned by the lookup endpoint.
// Fields absent from the response decode to their zero values.
type Gene struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Description   string `json:"description"`
	SeqRegionName string `json:"seq_region_name"`
	Start         int64  `json:"start"`
	End           int64  `json:"end"`
	Strand        int    `json:"strand"`
	Biotype       string `json:"biotype"`
}

// SearchSymbols queries the symbol cross-reference endpoint and returns
// the candidate gene identifiers for a symbol query.
func (c *Client) SearchSymbols(ctx context.Context, query string) ([]Xref, error) {
	reqURL := fmt.Sprintf("%s/xrefs/symbol/%s/%s", c.baseURL, c.species, url.PathEscape(query))

	var xrefs []Xref
	if err := c.getJSON(ctx, reqURL, &xrefs); err != nil {
		return nil, fmt.Errorf("search symbol %q: %w", query, err)
	}
	return xrefs, nil
}

// LookupGene fetches the detailed record for an Ensembl gene ID.
func (c *Client) LookupGene(ctx context.Context, id string) (*Gene, error) {
	reqURL := fmt.Sprintf("%s/lookup/id/%s?expand=1", c.baseURL, url.PathEscape(id))

	var g Gene
	if err := c.getJSON(ctx, reqURL, &g); err != nil {
		return nil, fmt.Errorf("lookup gene %q: %w", id, err)
	}
	return &g, nil
}

// getJSON performs a GET request and decodes the JSON response into v.
func (c *Client) getJSON(ctx context.Context, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("REST API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("REST API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode REST response: %w", err)
	}
	return nil
}
