package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds the client used for calls to the prediction service.
//
// http.DefaultClient has no timeout, so callers always go through this.
// The transport honors HTTP_PROXY and keeps a modest idle pool for the
// handful of endpoints the dashboard hits repeatedly.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
