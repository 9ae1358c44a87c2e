package http

import "net/http"

// headerTransport sets fixed headers on every outbound request. Empty values
// are skipped so optional credentials can be passed through unconditionally.
type headerTransport struct {
	headers   http.Header
	transport http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	for key, values := range t.headers {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		reqCopy.Header.Set(key, values[0])
	}

	return t.transport.RoundTrip(reqCopy)
}

// WithDefaultHeader sets key to value on every request
func WithDefaultHeader(key, value string) ClientOpt {
	headers := http.Header{}
	headers.Set(key, value)

	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			headers:   headers,
			transport: rt,
		}
	})
}

// WithAuthToken sends token as a bearer credential
func WithAuthToken(token string) ClientOpt {
	if token == "" {
		return WithDefaultHeader("Authorization", "")
	}
	return WithDefaultHeader("Authorization", "Bearer "+token)
}

// WithUserAgent identifies the service to upstream APIs
func WithUserAgent(userAgent string) ClientOpt {
	return WithDefaultHeader("User-Agent", userAgent)
}
