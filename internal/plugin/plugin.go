// Package plugin assembles the link preview extension from its parts and
// exposes it to a host through the Lifecycle capability.
package plugin

import (
	"context"
	"fmt"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/application/usecase"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/infrastructure/cache"
	"github.com/bnema/linkpeek/internal/logging"
	"github.com/bnema/linkpeek/internal/ui/component"
	"github.com/bnema/linkpeek/internal/ui/input"
)

// Options tunes a Plugin.
type Options struct {
	// LinkCacheSize bounds the memoized markdown link scans.
	LinkCacheSize int
	// Observers receive every preview event.
	Observers []port.PreviewObserver
	// NewID overrides preview id generation.
	NewID func() string
}

// Plugin is the link preview extension.
type Plugin struct {
	host port.Host
	opts Options

	store      *SettingsStore
	linkCache  *cache.LRU[usecase.DocumentDigest, []usecase.MarkdownLink]
	controller *component.PreviewController
	router     *input.PreviewRouter
	loaded     bool
}

var _ port.Lifecycle = (*Plugin)(nil)

// New creates an unloaded plugin for host.
func New(host port.Host, opts Options) *Plugin {
	if opts.LinkCacheSize <= 0 {
		opts.LinkCacheSize = usecase.DefaultLinkScanCacheSize
	}
	return &Plugin{
		host:  host,
		opts:  opts,
		store: NewSettingsStore(host.Data(), host.Platform()),
	}
}

// OnLoad reads the settings, wires locator, controller and router, registers
// the settings tab and attaches input listeners once the layout is ready.
func (p *Plugin) OnLoad(ctx context.Context) error {
	if p.loaded {
		return nil
	}
	ctx = logging.WithComponent(ctx, "linkpeek")
	log := logging.FromContext(ctx)

	settings, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("linkpeek: %w", err)
	}

	p.linkCache = cache.NewLRU[usecase.DocumentDigest, []usecase.MarkdownLink](p.opts.LinkCacheSize)
	locator := usecase.NewLocateLinkUseCase(p.host.Workspace(), usecase.NewLinkScanner(p.linkCache))

	tracker := input.NewPointerTracker()
	p.controller = component.NewPreviewController(ctx, component.PreviewControllerDeps{
		Scheduler: p.host.Scheduler(),
		Panels:    p.host.Panels(),
		Pointer:   tracker,
		Settings:  p.store.Current,
		NewID:     p.opts.NewID,
	})
	for _, o := range p.opts.Observers {
		p.controller.AddObserver(o)
	}
	p.router = input.NewPreviewRouter(ctx, locator, p.controller, tracker, p.store.Current)

	p.host.AddSettingsTab(NewSettingsTab(ctx, p.store))

	router := p.router
	p.host.OnLayoutReady(func() {
		router.Attach(p.host.Workspace(), p.host.Registrar())
	})

	p.loaded = true
	log.Info().
		Int("hover_delay_ms", settings.HoverDelayMs).
		Bool("require_modifier", settings.RequireModifier).
		Str("modifier_key", string(settings.ModifierKey)).
		Msg("link preview loaded")
	return nil
}

// OnUnload tears the preview down. Listeners go away with the host's
// scoped registrar.
func (p *Plugin) OnUnload(ctx context.Context) {
	if !p.loaded {
		return
	}
	p.controller.Dismiss(ctx, entity.DismissTeardown)
	p.linkCache.Clear()
	p.loaded = false
	logging.FromContext(ctx).Info().Msg("link preview unloaded")
}

// Settings returns the settings store.
func (p *Plugin) Settings() *SettingsStore { return p.store }

// Controller returns the preview controller, nil before OnLoad.
func (p *Plugin) Controller() *component.PreviewController { return p.controller }

// Router returns the input router, nil before OnLoad.
func (p *Plugin) Router() *input.PreviewRouter { return p.router }
