// Package embed provides the engines that load a link target into the
// sandboxed browsing surface of a preview panel.
package embed

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmbedRefused is returned when the target forbids being framed.
var ErrEmbedRefused = errors.New("target refuses to be embedded")

// HostOrigin is the origin previews are framed from.
const HostOrigin = "app://linkpeek"

// CheckFramePolicy inspects response headers for X-Frame-Options and the
// frame-ancestors directive of Content-Security-Policy.
func CheckFramePolicy(h http.Header) error {
	if xfo := strings.ToLower(strings.TrimSpace(h.Get("X-Frame-Options"))); xfo != "" {
		if xfo == "deny" || xfo == "sameorigin" || strings.HasPrefix(xfo, "allow-from") {
			return fmt.Errorf("%w: X-Frame-Options %s", ErrEmbedRefused, xfo)
		}
	}

	for _, csp := range h.Values("Content-Security-Policy") {
		for _, directive := range strings.Split(csp, ";") {
			fields := strings.Fields(strings.TrimSpace(directive))
			if len(fields) == 0 || !strings.EqualFold(fields[0], "frame-ancestors") {
				continue
			}
			if !frameAncestorsAllow(fields[1:]) {
				return fmt.Errorf("%w: frame-ancestors %s", ErrEmbedRefused, strings.Join(fields[1:], " "))
			}
		}
	}
	return nil
}

func frameAncestorsAllow(sources []string) bool {
	for _, src := range sources {
		switch s := strings.ToLower(src); {
		case s == "*":
			return true
		case s == "'none'", s == "'self'":
			continue
		case s == HostOrigin, s == "app:", s == "app://*":
			return true
		}
	}
	return false
}
