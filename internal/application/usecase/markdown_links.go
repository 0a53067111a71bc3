package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/bnema/linkpeek/internal/application/port"
)

// DefaultLinkScanCacheSize bounds the number of documents whose links are kept.
const DefaultLinkScanCacheSize = 32

var inlineLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)

// MarkdownLink is an inline [label](url) link found in document text.
type MarkdownLink struct {
	Label string
	URL   string
}

// DocumentDigest identifies document text in the scan cache.
type DocumentDigest [blake2b.Size256]byte

// LinkScanner extracts inline links from document text.
type LinkScanner struct {
	cache port.Cache[DocumentDigest, []MarkdownLink]
}

// NewLinkScanner creates a scanner. A nil cache disables memoization.
func NewLinkScanner(cache port.Cache[DocumentDigest, []MarkdownLink]) *LinkScanner {
	return &LinkScanner{cache: cache}
}

// Scan returns the inline links of text in document order.
func (s *LinkScanner) Scan(text string) []MarkdownLink {
	if s == nil || s.cache == nil {
		return ScanMarkdownLinks(text)
	}

	key := DocumentDigest(blake2b.Sum256([]byte(text)))
	if links, ok := s.cache.Get(key); ok {
		return links
	}
	links := ScanMarkdownLinks(text)
	s.cache.Set(key, links)
	return links
}

// ScanMarkdownLinks is the uncached linear scan behind LinkScanner.
func ScanMarkdownLinks(text string) []MarkdownLink {
	matches := inlineLinkPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make([]MarkdownLink, 0, len(matches))
	for _, m := range matches {
		links = append(links, MarkdownLink{Label: m[1], URL: m[2]})
	}
	return links
}

// MatchLinkLabel returns the URL of the first link whose label matches the
// rendered text: equal, label contains text, or text contains label.
// Overlapping labels resolve to whichever link appears first. Blank labels
// and blank text never match.
func MatchLinkLabel(links []MarkdownLink, rendered string) (string, bool) {
	text := strings.TrimSpace(rendered)
	if text == "" {
		return "", false
	}
	for _, link := range links {
		label := strings.TrimSpace(link.Label)
		if label == "" {
			continue
		}
		if label == text || strings.Contains(label, text) || strings.Contains(text, label) {
			return link.URL, true
		}
	}
	return "", false
}
