package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10*time.Second, 30*time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose transport uses separate
// connect and read timeouts, so a hung connection fails fast while a slow
// but live body stream is not cut off mid-transfer.
//
// connectTimeout bounds dialing (and TLS setup); readTimeout bounds the wait
// for response headers. Non-positive values leave the respective phase
// unbounded.
func NewHTTPClient(connectTimeout, readTimeout time.Duration) *HTTPClient {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: readTimeout,
	}

	client := resty.New().SetTransport(transport)

	return &HTTPClient{Client: client}
}
