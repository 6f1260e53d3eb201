package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds a [resty.Client] preconfigured for talking to the
// resolver server: JSON accept header, a user agent and a request timeout.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. A zero timeout leaves the
// resty default (no timeout) in place.
func NewHTTPClient(userAgent string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
