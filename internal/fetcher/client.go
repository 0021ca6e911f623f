// Package fetcher retrieves records from the remote resource API and from
// local JSON and CSV files.
package fetcher

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"recpipe/internal/models"
)

// Fetch errors. Every failure is unrecoverable for the caller: there is no
// retry and no partial result.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrNoResults            = errors.New("search returned no results")
)

// resultsKey is the field holding the payload inside a search envelope.
const resultsKey = "results"

// Client performs blocking HTTP fetches against a JSON resource API.
type Client struct {
	client *http.Client
}

// NewClient creates a client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Resource fetches a single resource by its locator and decodes the response
// body as one record.
func (c *Client) Resource(locator string) (models.Record, error) {
	body, err := c.get(locator)
	if err != nil {
		return nil, err
	}

	var record models.Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode resource %s: %w", locator, err)
	}

	return record, nil
}

// Search queries a search endpoint and returns the full results collection
// unwrapped from the response envelope.
func (c *Client) Search(endpoint, query string) (models.Collection, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %s: %w", endpoint, err)
	}

	q := u.Query()
	q.Set("search", query)
	u.RawQuery = q.Encode()

	body, err := c.get(u.String())
	if err != nil {
		return nil, err
	}

	var envelope models.Record
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode search envelope: %w", err)
	}

	raw, ok := envelope[resultsKey].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: envelope has no %q list", ErrNoResults, resultsKey)
	}

	results := make(models.Collection, 0, len(raw))

	for _, item := range raw {
		record, ok := item.(models.Record)
		if !ok {
			return nil, fmt.Errorf("failed to decode search envelope: result is %T, not an object", item)
		}

		results = append(results, record)
	}

	return results, nil
}

// SearchOne queries a search endpoint and returns the first result. Callers
// resolving a record by name use this single-result contract.
func (c *Client) SearchOne(endpoint, query string) (models.Record, error) {
	results, err := c.Search(endpoint, query)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q against %s", ErrNoResults, query, endpoint)
	}

	return results[0], nil
}

func (c *Client) get(target string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "recpipe/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatusCode, resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
