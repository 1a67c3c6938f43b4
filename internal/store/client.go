// Package store is a thin client for the hosted backend's PostgREST-style
// data API. Queries are built with From(...).Eq(...).Order(...) chains and
// executed as single HTTP round trips; row-level security is enforced
// remotely based on the API key the client was created with.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// New creates a client bound to one API key. The key decides which row-level
// policies apply, so the anon-key client and the service-role client are two
// distinct values of this type.
func New(baseURL string, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
	}
}

func (c *Client) From(table string) *Query {
	return &Query{
		client: c,
		table:  table,
	}
}

func (c *Client) do(ctx context.Context, method string, url string, headers map[string]string, body any, dest any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		// PostgREST answers 406 to an object-mode read that matched no rows.
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNotAcceptable {
			return ErrNotFound
		}
		c.logger.Sugar().Errorf("store responded %d on %s %s: %s", resp.StatusCode, method, url, string(respBody))
		return &RequestError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return err
		}
	}
	return nil
}
