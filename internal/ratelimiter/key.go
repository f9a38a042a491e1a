package ratelimiter

import (
	"net"
	"net/netip"
	"strings"
)

// ClientKey returns the rate limit key for a call from peer. The host part
// of the peer address is used, unless the peer is a local relay (a loopback
// address or an in-process transport such as bufconn) that forwarded the
// original client address; then the left-most forwarded address wins.
func ClientKey(peer net.Addr, forwardedFor []string) string {
	if peer == nil {
		return ""
	}
	host := peer.String()
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	if isLocalRelay(host) {
		if fwd := firstForwarded(forwardedFor); fwd != "" {
			return fwd
		}
	}
	return host
}

func isLocalRelay(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		// not an IP: pipe or in-memory listener inside this process
		return true
	}
	return addr.IsLoopback()
}

func firstForwarded(values []string) string {
	for _, v := range values {
		first, _, _ := strings.Cut(v, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	return ""
}
