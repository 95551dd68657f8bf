package odata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eatu-cf/odata-query-services/internal/destinations"
	"github.com/pkg/errors"
)

// DestinationResolver looks up the connection details of a named destination.
type DestinationResolver interface {
	Resolve(ctx context.Context, name string) (*destinations.Destination, error)
}

// Client executes queries against OData V2 services reached through
// named destinations.
type Client struct {
	Destinations DestinationResolver
	HTTPClient   *http.Client
}

// NewClient creates a new instance of Client.
func NewClient(resolver DestinationResolver) *Client {
	return &Client{
		Destinations: resolver,
		HTTPClient:   &http.Client{},
	}
}

// Execute runs q against the destination and returns the result rows in
// service order. Every failure is a *QueryError carrying a stack trace.
func (c *Client) Execute(ctx context.Context, q Query, destination string) ([]Entity, error) {
	start := time.Now()
	entities, err := c.execute(ctx, q, destination)
	observeQuery(destination, q.EntitySet, err, time.Since(start))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return entities, nil
}

func (c *Client) execute(ctx context.Context, q Query, destination string) ([]Entity, error) {
	dest, err := c.Destinations.Resolve(ctx, destination)
	if err != nil {
		return nil, &QueryError{Message: fmt.Sprintf("failed to resolve destination %q", destination), Err: err}
	}

	reqURL, err := q.URL(dest)
	if err != nil {
		return nil, &QueryError{Message: fmt.Sprintf("invalid url for destination %q", destination), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &QueryError{Message: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if dest.User != "" {
		req.SetBasicAuth(dest.User, dest.Password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &QueryError{Message: "failed to make request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &QueryError{Status: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode >= 400 {
		return nil, &QueryError{Status: resp.StatusCode, Message: errorMessage(body, resp.Status)}
	}

	entities, err := decodeCollection(body)
	if err != nil {
		return nil, &QueryError{Status: resp.StatusCode, Message: "failed to decode response", Err: err}
	}

	return entities, nil
}

// decodeCollection accepts both V2 collection envelopes:
// {"d": {"results": [...]}} and the older {"d": [...]}.
func decodeCollection(body []byte) ([]Entity, error) {
	var envelope struct {
		D json.RawMessage `json:"d"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	d := bytes.TrimSpace(envelope.D)
	if len(d) == 0 || isNull(d) {
		return nil, fmt.Errorf("response has no data")
	}

	var entities []Entity
	if d[0] == '[' {
		if err := json.Unmarshal(d, &entities); err != nil {
			return nil, err
		}
	} else {
		var wrapped struct {
			Results *[]Entity `json:"results"`
		}
		if err := json.Unmarshal(d, &wrapped); err != nil {
			return nil, err
		}
		if wrapped.Results == nil {
			return nil, fmt.Errorf("response is not a collection")
		}
		entities = *wrapped.Results
	}

	for _, e := range entities {
		delete(e, "__metadata")
	}
	if entities == nil {
		entities = []Entity{}
	}
	return entities, nil
}
