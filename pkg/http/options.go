package http

import "time"

type ClientOpt func(*clientConfig)

func WithConnClientTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.connTimeout = timeout
	}
}

// WithRequestTimeout bounds a whole exchange including reading the body
func WithRequestTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.requestTimeout = timeout
	}
}

func WithClientKeepAlive(keepAlive time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.keepAlive = keepAlive
	}
}

func WithResponseHeaderTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.responseHeaderTimeout = timeout
	}
}

func WithIdleConnTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.idleConnTimeout = timeout
	}
}

// WithTransport wraps the base transport. Wrappers apply in the order given,
// so the last one added sees the request first.
func WithTransport(transport TransportFunc) ClientOpt {
	return func(c *clientConfig) {
		c.transports = append(c.transports, transport)
	}
}
