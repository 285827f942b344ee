package api

import "time"

// DefaultBaseURL is used when the config does not name a server.
const DefaultBaseURL = "http://localhost:8192"

// NewDefaultClient builds a client pointed at the default gallery URL.
func NewDefaultClient(timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, timeout...)
}
