package handler

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc extracts the rate-limit key for a request.
type KeyFunc func(r *http.Request) string

// RemoteAddrKey keys by the host part of the connecting address.
func RemoteAddrKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ForwardedForKey reads the client address that the outermost of
// trustedProxies reverse proxies appended to X-Forwarded-For. Entries left of
// that position are client-controlled and ignored. With no usable header it
// falls back to RemoteAddrKey.
func ForwardedForKey(trustedProxies int) KeyFunc {
	if trustedProxies <= 0 {
		return RemoteAddrKey
	}
	return func(r *http.Request) string {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			idx := len(parts) - trustedProxies
			if idx >= 0 && idx < len(parts) {
				if ip := strings.TrimSpace(parts[idx]); ip != "" {
					return ip
				}
			}
		}
		return RemoteAddrKey(r)
	}
}
