package origin

// Package origin decides whether a submitted URL belongs to a supported
// platform family. Purely syntactic; no network access.

import (
	"net/url"
	"strings"
)

// allowedHosts is the fixed allowlist of platform hosts, including known
// mobile and alternate subdomains. Arbitrary subdomains of these hosts are
// also accepted via suffix matching.
var allowedHosts = map[string]struct{}{
	"twitter.com":        {},
	"www.twitter.com":    {},
	"mobile.twitter.com": {},
	"m.twitter.com":      {},
	"x.com":              {},
	"www.x.com":          {},
	"instagram.com":      {},
	"www.instagram.com":  {},
	"m.instagram.com":    {},
	"tiktok.com":         {},
	"www.tiktok.com":     {},
	"vm.tiktok.com":      {},
	"youtube.com":        {},
	"www.youtube.com":    {},
	"m.youtube.com":      {},
	"music.youtube.com":  {},
	"youtu.be":           {},
}

// IsAllowed reports whether rawURL points at a supported platform. Only
// absolute http/https URLs pass; the host must exactly match an allowlist
// entry or be a proper suffix of one (foo.instagram.com matches
// .instagram.com). Malformed URLs are rejected, never propagated as errors.
func IsAllowed(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	if _, ok := allowedHosts[host]; ok {
		return true
	}
	for allowed := range allowedHosts {
		if strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
