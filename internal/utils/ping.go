package utils

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

const authzPingTimeout = 1500 * time.Millisecond

// PingService opens and closes a TCP connection to the host behind the
// given URL to verify it is reachable.
func PingService(serviceURL string, timeout time.Duration) error {
	parsedURL, err := url.Parse(serviceURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	port := parsedURL.Port()
	if port == "" {
		if parsedURL.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}

	address := net.JoinHostPort(parsedURL.Hostname(), port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}

// PingAuthorizer checks if the identity provider is reachable
func PingAuthorizer(authzURL string) error {
	return PingService(authzURL, authzPingTimeout)
}
