package utils

import (
	"net/http"
	"time"
)

type HTTPClientConfig struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AssetHTTPClient wraps the stdlib client so the identifying
// User-Agent and any extra headers reach every request.
type AssetHTTPClient struct {
	client *http.Client
	config HTTPClientConfig
}

func NewAssetHTTPClient(cfg HTTPClientConfig) *AssetHTTPClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}
	return &AssetHTTPClient{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		config: cfg,
	}
}

func (c *AssetHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	} else {
		req.Header.Set("User-Agent", ToolUserAgent)
	}
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	return c.client.Do(req)
}
