package embed

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/logging"
)

// ChromeOptions configure the headless browser engine.
type ChromeOptions struct {
	ExecPath string
	Timeout  time.Duration
	Width    int
	Height   int
}

// ChromeEngine navigates a headless Chrome tab to the target and applies
// the same framing rules a real embed would.
type ChromeEngine struct {
	opts ChromeOptions

	mu          sync.Mutex
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

var _ port.EmbedEngine = (*ChromeEngine)(nil)

// NewChromeEngine creates an engine. The browser starts on first Load.
func NewChromeEngine(opts ChromeOptions) *ChromeEngine {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 600
	}
	return &ChromeEngine{opts: opts}
}

func (e *ChromeEngine) Name() string { return "chrome" }

func (e *ChromeEngine) allocator() context.Context {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.allocCtx != nil {
		return e.allocCtx
	}

	allocOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(e.opts.Width, e.opts.Height),
	}
	if e.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(e.opts.ExecPath))
	}
	e.allocCtx, e.allocCancel = chromedp.NewExecAllocator(context.Background(), allocOpts...)
	return e.allocCtx
}

// Load implements port.EmbedEngine.
func (e *ChromeEngine) Load(ctx context.Context, url string) error {
	log := logging.FromContext(ctx)

	tabCtx, cancelTab := chromedp.NewContext(e.allocator())
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, e.opts.Timeout)
	defer cancelTimeout()

	// Stop the tab when the caller gives up.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var (
		mu      sync.Mutex
		headers http.Header
		status  int64
	)
	chromedp.ListenTarget(tabCtx, func(ev any) {
		resp, ok := ev.(*network.EventResponseReceived)
		if !ok || resp.Type != network.ResourceTypeDocument || resp.Response == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if headers != nil {
			return
		}
		headers = toHTTPHeader(resp.Response.Headers)
		status = resp.Response.Status
	})

	err := chromedp.Run(tabCtx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("browser load %s: %w", url, err)
	}

	mu.Lock()
	defer mu.Unlock()
	log.Debug().Str("url", url).Int64("status", status).Msg("embed browser response")
	if status >= http.StatusBadRequest {
		return fmt.Errorf("browser load %s: status %d", url, status)
	}
	return CheckFramePolicy(headers)
}

// Close shuts the browser down.
func (e *ChromeEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.allocCancel != nil {
		e.allocCancel()
		e.allocCtx, e.allocCancel = nil, nil
	}
}

func toHTTPHeader(h network.Headers) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if s, ok := v.(string); ok {
			out.Add(k, s)
		}
	}
	return out
}
