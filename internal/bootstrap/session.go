// Package bootstrap assembles a simulated host session: the configured
// embed engine, an event loop, the host, the preview plugin and its
// journal, driven by a recorded input script.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/domain/repository"
	"github.com/bnema/linkpeek/internal/infrastructure/config"
	"github.com/bnema/linkpeek/internal/infrastructure/embed"
	"github.com/bnema/linkpeek/internal/infrastructure/host"
	"github.com/bnema/linkpeek/internal/logging"
	"github.com/bnema/linkpeek/internal/plugin"
	"github.com/bnema/linkpeek/internal/ui/mainloop"
)

// MainWindowID is the window the note is opened in.
const MainWindowID = "main"

const unloadTimeout = 2 * time.Second

var errLoopStopped = errors.New("event loop stopped")

// SessionOptions configures a Session.
type SessionOptions struct {
	Config *config.Config
	// Source is the markdown shown in the main window.
	Source string
	// DocumentPath, when set with Watch, reloads Source on change.
	DocumentPath string
	Watch        bool
	Mode         DocumentMode
	Script       *Script
	// Realtime runs on the wall clock instead of the virtual one.
	Realtime bool
	// Data stores the settings blob. Defaults to memory.
	Data port.PluginDataStore
	// Journal, when set, records every shown preview.
	Journal repository.PreviewJournalRepository
	// Engine overrides the engine selected by Config.
	Engine port.EmbedEngine
	// Start is the virtual clock origin. Defaults to now.
	Start time.Time
	// NewID overrides preview id generation.
	NewID func() string
}

// Session is one simulated host running the preview plugin.
type Session struct {
	opts SessionOptions

	virtual *mainloop.VirtualLoop
	loop    *mainloop.Loop
	sched   port.Scheduler

	engine   port.EmbedEngine
	panels   *host.PanelRenderer
	host     *host.Host
	plugin   *plugin.Plugin
	journal  *plugin.JournalObserver
	renderer *Renderer
	editor   *host.Editor
	trace    *Trace
	timer    *phaseTimer

	held   port.Modifiers
	loaded bool
}

// NewSession builds every component but loads nothing; Run does that.
func NewSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Script == nil {
		opts.Script = &Script{}
	}
	if opts.Data == nil {
		opts.Data = &plugin.MemoryDataStore{}
	}
	if opts.Mode == "" {
		opts.Mode = ModeReading
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	timer := newPhaseTimer()
	sim := opts.Config.Simulation

	s := &Session{opts: opts, timer: timer, renderer: NewRenderer(sim)}
	if opts.Realtime {
		s.loop = mainloop.NewLoop()
		s.sched = s.loop
	} else {
		s.virtual = mainloop.NewVirtualLoop(opts.Start)
		s.sched = s.virtual
	}
	s.trace = NewTrace(s.sched.Now())

	s.engine = opts.Engine
	if s.engine == nil {
		engine, err := embed.New(embed.Config{
			Engine:       sim.Engine,
			ProbeTimeout: sim.ProbeTimeout(),
			ChromePath:   sim.ChromePath,
			Refuse:       sim.RefuseHosts,
		})
		if err != nil {
			return nil, fmt.Errorf("create embed engine: %w", err)
		}
		s.engine = engine
	}
	timer.Mark("engine")

	s.panels = host.NewPanelRenderer(ctx, s.engine)
	s.host = host.New(ctx, host.Options{
		Scheduler: s.sched,
		Data:      opts.Data,
		Panels:    s.panels,
		Platform:  sim.ResolvePlatform(),
	})

	observers := []port.PreviewObserver{s.trace}
	if opts.Journal != nil {
		s.journal = plugin.NewJournalObserver(opts.Journal)
		observers = append(observers, s.journal)
	}
	s.plugin = plugin.New(s.host, plugin.Options{Observers: observers, NewID: opts.NewID})
	timer.Mark("host")

	logging.FromContext(ctx).Debug().
		Str("engine", s.engine.Name()).
		Str("mode", string(opts.Mode)).
		Bool("realtime", opts.Realtime).
		Int("steps", len(opts.Script.Steps)).
		Msg("session created")
	return s, nil
}

// Trace returns the session trace.
func (s *Session) Trace() *Trace { return s.trace }

// Host returns the simulated host.
func (s *Session) Host() *host.Host { return s.host }

// Plugin returns the loaded plugin.
func (s *Session) Plugin() *plugin.Plugin { return s.plugin }

// Panels returns the panel renderer.
func (s *Session) Panels() *host.PanelRenderer { return s.panels }

// Run opens the note, loads the plugin, replays the script and unloads.
// The loop, document watcher and journal writer run alongside under one
// errgroup; the first failure cancels the rest.
func (s *Session) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "session")
	log := logging.FromContext(ctx)

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	// The loop outlives an interrupt until the plugin is unloaded on it.
	loopCtx, stopLoop := context.WithCancel(context.WithoutCancel(ctx))
	defer stopLoop()

	if s.loop != nil {
		g.Go(func() error {
			if err := s.loop.Run(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("event loop: %w", err)
			}
			return nil
		})
	}
	if s.journal != nil {
		// Stops once Close drains the queue, so late records are kept.
		journalCtx := context.WithoutCancel(ctx)
		g.Go(func() error { return s.journal.Run(journalCtx) })
	}
	if s.opts.Watch && s.opts.DocumentPath != "" {
		watcher := host.NewDocumentWatcher(s.opts.DocumentPath, s.sched, s.reload)
		g.Go(func() error { return watcher.Run(gctx) })
	}

	g.Go(func() error {
		defer stop()
		defer stopLoop()
		if s.journal != nil {
			defer s.journal.Close()
		}

		err := s.onLoop(gctx, func() error { return s.start(gctx) })
		if err == nil {
			err = s.play(gctx)
		}
		s.unload(ctx)
		return err
	})

	err := g.Wait()
	s.panels.Wait()
	if closer, ok := s.engine.(interface{ Close() }); ok {
		closer.Close()
	}
	s.timer.Log(ctx)
	if s.journal != nil && s.journal.Dropped() > 0 {
		log.Warn().Int("dropped", s.journal.Dropped()).Msg("journal queue overflowed")
	}
	return err
}

func (s *Session) start(ctx context.Context) error {
	doc, err := s.renderer.Render(s.opts.Source, s.opts.Mode)
	if err != nil {
		return err
	}
	s.editor = host.NewEditor(s.opts.Source, s.opts.Mode.EditorMode())
	s.host.SimWorkspace().SetActiveEditor(s.editor)
	s.host.OpenWindow(MainWindowID, doc)
	s.timer.Mark("render")

	if err := s.host.Load(ctx, s.plugin); err != nil {
		return fmt.Errorf("load plugin: %w", err)
	}
	s.loaded = true
	s.host.MarkLayoutReady()
	s.timer.Mark("load")
	s.trace.Note(s.sched.Now(), "loaded", fmt.Sprintf("%s engine, %s view", s.engine.Name(), s.opts.Mode))
	return nil
}

func (s *Session) unload(ctx context.Context) {
	if !s.loaded {
		return
	}
	unloadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unloadTimeout)
	defer cancel()
	unloadFn := func() error {
		s.host.Unload(ctx, s.plugin)
		s.loaded = false
		return nil
	}
	err := s.onLoop(unloadCtx, unloadFn)
	if errors.Is(err, errLoopStopped) {
		// Nothing else runs loop callbacks any more.
		err = unloadFn()
	}
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("plugin unload did not complete")
	}
	s.settle()
}

func (s *Session) play(ctx context.Context) error {
	for i := range s.opts.Script.Steps {
		st := s.opts.Script.Steps[i]
		if err := ctx.Err(); err != nil {
			return err
		}
		if st.Action == ActionWait {
			d, err := st.WaitDuration()
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			s.trace.Step(s.sched.Now(), st)
			if err := s.wait(ctx, d); err != nil {
				return err
			}
			continue
		}
		err := s.onLoop(ctx, func() error {
			s.trace.Step(s.sched.Now(), st)
			return s.apply(st)
		})
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
	}
	s.settle()
	return nil
}

// onLoop runs fn on the loop and waits for it.
func (s *Session) onLoop(ctx context.Context, fn func() error) error {
	if s.virtual != nil {
		err := fn()
		s.virtual.RunPending()
		return err
	}
	select {
	case <-s.loop.Done():
		return errLoopStopped
	default:
	}
	done := make(chan error, 1)
	s.loop.Post(func() { done <- fn() })
	select {
	case err := <-done:
		return err
	case <-s.loop.Done():
		select {
		case err := <-done:
			return err
		default:
			return errLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// wait lets d pass. On the virtual clock, embed loads started by a timer
// complete before the clock moves past it.
func (s *Session) wait(ctx context.Context, d time.Duration) error {
	if s.virtual == nil {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	target := s.virtual.Now().Add(d)
	for {
		s.settle()
		due, ok := s.virtual.NextDue()
		if !ok || due.After(target) {
			break
		}
		s.virtual.Advance(due.Sub(s.virtual.Now()))
	}
	s.virtual.Advance(target.Sub(s.virtual.Now()))
	s.settle()
	return nil
}

func (s *Session) settle() {
	if s.virtual == nil {
		return
	}
	s.panels.Wait()
	s.virtual.RunPending()
}

func (s *Session) apply(st Step) error {
	winID := st.Window
	if winID == "" {
		winID = MainWindowID
	}
	mods, err := parseModifiers(st.Modifiers)
	if err != nil {
		return err
	}
	mods = mergeModifiers(s.held, mods)

	switch st.Action {
	case ActionMove, ActionOver:
		win, ok := s.host.SimWorkspace().Window(winID)
		if !ok {
			return fmt.Errorf("unknown window %q", winID)
		}
		p := entity.Point{X: st.X, Y: st.Y}
		var target port.Element
		if st.Selector != "" {
			el, err := win.HTMLDocument().QueryOne(st.Selector)
			if err != nil {
				return err
			}
			target = el
			p = el.BoundingRect().Center()
		}
		if st.Action == ActionMove {
			s.host.MovePointer(winID, p, mods)
			return nil
		}
		if target == nil {
			target = win.Document().ElementFromPoint(p)
		}
		if target == nil {
			return fmt.Errorf("nothing at (%g,%g)", p.X, p.Y)
		}
		s.host.PointerOver(winID, target, nil, p, mods)

	case ActionKeyDown:
		key := domKey(st.Key)
		s.held = setModifier(s.held, key, true)
		s.host.KeyDown(winID, key, mergeModifiers(s.held, mods))

	case ActionKeyUp:
		key := domKey(st.Key)
		s.held = setModifier(s.held, key, false)
		s.host.KeyUp(winID, key, setModifier(mods, key, false))

	case ActionOpenWindow:
		if _, exists := s.host.SimWorkspace().Window(st.Window); exists {
			return fmt.Errorf("window %q already open", st.Window)
		}
		doc, err := s.renderer.Render(st.Text, s.opts.Mode)
		if err != nil {
			return err
		}
		s.host.OpenWindow(st.Window, doc)

	case ActionEdit:
		return s.replaceSource(winID, st.Text)
	}
	return nil
}

// reload runs on the loop when the watched note changes.
func (s *Session) reload(content string) {
	if err := s.replaceSource(MainWindowID, content); err != nil {
		logging.FromContext(context.Background()).Warn().Err(err).Msg("failed to reload note")
		return
	}
	s.trace.Note(s.sched.Now(), "reload", strconv.Itoa(len(content))+" bytes")
}

func (s *Session) replaceSource(winID, src string) error {
	win, ok := s.host.SimWorkspace().Window(winID)
	if !ok {
		return fmt.Errorf("unknown window %q", winID)
	}
	doc, err := s.renderer.Render(src, s.opts.Mode)
	if err != nil {
		return err
	}
	win.SetDocument(doc)
	if winID == MainWindowID && s.editor != nil {
		s.editor.SetText(src)
	}
	return nil
}

func mergeModifiers(a, b port.Modifiers) port.Modifiers {
	return port.Modifiers{
		Ctrl:  a.Ctrl || b.Ctrl,
		Meta:  a.Meta || b.Meta,
		Alt:   a.Alt || b.Alt,
		Shift: a.Shift || b.Shift,
	}
}

func setModifier(m port.Modifiers, key string, down bool) port.Modifiers {
	switch key {
	case "Control":
		m.Ctrl = down
	case "Meta":
		m.Meta = down
	case "Alt":
		m.Alt = down
	case "Shift":
		m.Shift = down
	}
	return m
}

// ReadSource reads a note from disk.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read note: %w", err)
	}
	return string(data), nil
}
