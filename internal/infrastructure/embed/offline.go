package embed

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/linkpeek/internal/application/port"
	urlutil "github.com/bnema/linkpeek/internal/domain/url"
)

// OfflineEngine succeeds without touching the network, after an optional
// delay. Hosts listed in Refuse fail as if they forbade framing.
type OfflineEngine struct {
	Delay  time.Duration
	Refuse []string
}

var _ port.EmbedEngine = (*OfflineEngine)(nil)

func (e *OfflineEngine) Name() string { return "offline" }

// Load implements port.EmbedEngine.
func (e *OfflineEngine) Load(ctx context.Context, url string) error {
	if e.Delay > 0 {
		t := time.NewTimer(e.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	for _, domain := range e.Refuse {
		if urlutil.HostMatches(url, domain) {
			return fmt.Errorf("%w: %s", ErrEmbedRefused, domain)
		}
	}
	return nil
}
