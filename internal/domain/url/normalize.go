// Package url provides URL helpers for link previews.
package url

import (
	"net/url"
	"strings"
	"unicode"
)

// NormalizeHTTP turns a candidate string into an absolute http(s) URL.
// It trims surrounding whitespace and requires a case-insensitive http:// or
// https:// prefix, no inner whitespace, and a well-formed URL with a host. The trimmed input is
// returned unchanged so that normalizing twice yields the same result.
func NormalizeHTTP(raw string) (string, bool) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", false
	}

	if !HasHTTPPrefix(candidate) {
		return "", false
	}

	if strings.IndexFunc(candidate, unicode.IsSpace) >= 0 {
		return "", false
	}

	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Host == "" {
		return "", false
	}

	return candidate, true
}

// HasHTTPPrefix reports whether s starts with http:// or https://, ignoring case.
func HasHTTPPrefix(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so github.com and www.github.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
}

// HostMatches reports whether rawURL's host is domain or one of its subdomains.
func HostMatches(rawURL, domain string) bool {
	host := ExtractDomain(rawURL)
	if host == "" {
		return false
	}
	domain = strings.ToLower(domain)
	return host == domain || strings.HasSuffix(host, "."+domain)
}
