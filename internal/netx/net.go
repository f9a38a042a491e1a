// Package netx holds small helpers for turning listen addresses into
// something a client can dial or a human can read.
package netx

import (
	"net"
	"strings"
)

// DialAddress converts a listen address into a dialable one. An empty or
// unspecified host (":9090", "0.0.0.0:9090", "[::]:9090") becomes
// localhost. Addresses without a port are returned unchanged.
func DialAddress(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return listen
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}

// Port returns the port part of addr, or addr itself trimmed of a leading
// colon when it cannot be split.
func Port(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return strings.TrimPrefix(addr, ":")
}
