package embed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/logging"
)

const (
	defaultProbeTimeout = 10 * time.Second
	probeUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) linkpeek"
	probeBodyLimit      = 64 << 10
)

// ProbeEngine fetches the target over HTTP and reports whether a framed
// load would succeed. It never renders the content.
type ProbeEngine struct {
	client *http.Client
}

var _ port.EmbedEngine = (*ProbeEngine)(nil)

// NewProbeEngine creates a probe engine. A non-positive timeout uses 10s.
func NewProbeEngine(timeout time.Duration) *ProbeEngine {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &ProbeEngine{client: &http.Client{Timeout: timeout}}
}

// NewProbeEngineWithClient creates a probe engine around client.
func NewProbeEngineWithClient(client *http.Client) *ProbeEngine {
	return &ProbeEngine{client: client}
}

func (e *ProbeEngine) Name() string { return "probe" }

// Load implements port.EmbedEngine.
func (e *ProbeEngine) Load(ctx context.Context, url string) error {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", probeUserAgent)
	req.Header.Set("Sec-Fetch-Dest", "iframe")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, probeBodyLimit))

	log.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("embed probe response")

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	return CheckFramePolicy(resp.Header)
}
