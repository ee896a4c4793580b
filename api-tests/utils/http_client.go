// Package utils - HTTP client dùng chung cho các test case gọi API thật.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient bao bọc http.Client với base URL và bearer token.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient tạo client mới với timeout tính bằng giây.
func NewHTTPClient(baseURL string, timeoutSeconds int) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}
}

// SetToken đặt bearer token cho các request tiếp theo.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// GET gửi request GET tới path (tương đối so với base URL).
func (c *HTTPClient) GET(path string) (*http.Response, []byte, error) {
	return c.do("GET", path, nil)
}

// POST gửi request POST với payload được encode thành JSON.
func (c *HTTPClient) POST(path string, payload interface{}) (*http.Response, []byte, error) {
	return c.do("POST", path, payload)
}

func (c *HTTPClient) do(method, path string, payload interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("encode payload: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, body, nil
}
