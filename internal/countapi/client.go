// Package countapi 是 CountAPI 风格计数服务的 HTTP 客户端。
package countapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL   string
	namespace string
	key       string
	httpCli   *http.Client
}

type hitResponse struct {
	Value *int64 `json:"value"`
}

func NewClient(baseURL, namespace, key string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		namespace: namespace,
		key:       key,
		httpCli: &http.Client{
			Timeout: timeout,
		},
	}
}

// Hit 计数加一并返回最新值：GET {base}/hit/{namespace}/{key}
func (c *Client) Hit(ctx context.Context) (int64, error) {
	endpoint := fmt.Sprintf("%s/hit/%s/%s", c.baseURL, url.PathEscape(c.namespace), url.PathEscape(c.key))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpCli.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("countapi: unexpected status %d", resp.StatusCode)
	}

	var hr hitResponse
	if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil {
		return 0, fmt.Errorf("countapi: decode response: %w", err)
	}
	if hr.Value == nil {
		return 0, fmt.Errorf("countapi: response has no value")
	}
	return *hr.Value, nil
}
