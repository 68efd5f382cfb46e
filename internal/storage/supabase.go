// Package storage talks to the Supabase Storage REST API.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	bucket     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(supabaseURL, bucket, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(supabaseURL, "/"),
		bucket:     bucket,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Object is one entry of a listing. Folders have no ID.
type Object struct {
	Name      string    `json:"name"`
	ID        *string   `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (o Object) IsFolder() bool { return o.ID == nil }

type apiError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Upload stores data under path. Existing objects are not overwritten.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	_, err = c.do(req)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}

// PublicURL returns the public download URL for path.
func (c *Client) PublicURL(path string) string {
	return c.publicPrefix() + escapePath(path)
}

// ObjectPath is the inverse of PublicURL. It reports false for URLs that do
// not point into this bucket.
func (c *Client) ObjectPath(publicURL string) (string, bool) {
	rest, ok := strings.CutPrefix(publicURL, c.publicPrefix())
	if !ok || rest == "" {
		return "", false
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return path, true
}

// Remove deletes the given objects.
func (c *Client) Remove(ctx context.Context, paths ...string) error {
	payload, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("remove %v: %w", paths, err)
	}
	return nil
}

// List returns one page of the entries directly under prefix.
func (c *Client) List(ctx context.Context, prefix string, limit, offset int) ([]Object, error) {
	payload, err := json.Marshal(map[string]any{
		"prefix": prefix,
		"limit":  limit,
		"offset": offset,
		"sortBy": map[string]string{"column": "name", "order": "asc"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/list/%s", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}

	var objects []Object
	if err := json.Unmarshal(body, &objects); err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}
	return objects, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("storage error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("storage error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func (c *Client) publicPrefix() string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/", c.baseURL, c.bucket)
}

func escapePath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
