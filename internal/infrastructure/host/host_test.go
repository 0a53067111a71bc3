package host

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linkpeek/internal/application/port"
	portmocks "github.com/bnema/linkpeek/internal/application/port/mocks"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/infrastructure/embed"
	"github.com/bnema/linkpeek/internal/infrastructure/htmldom"
	"github.com/bnema/linkpeek/internal/ui/mainloop"
)

const hostFixture = `<html><body>
<p><a id="a" href="https://example.com" data-rect="100,100,80,20">a</a></p>
<p><a id="b" href="https://example.org" data-rect="100,200,80,20">b</a></p>
</body></html>`

func newTestHost(t *testing.T) (*Host, *htmldom.Document) {
	t.Helper()
	doc, err := htmldom.ParseString(hostFixture, htmldom.DefaultOptions())
	require.NoError(t, err)
	h := New(context.Background(), Options{
		Scheduler: mainloop.NewVirtualLoop(time.Unix(0, 0)),
		Panels:    NewPanelRenderer(context.Background(), &embed.OfflineEngine{}),
	})
	return h, doc
}

func TestHost_MovePointerFiresOverOnEnter(t *testing.T) {
	h, doc := newTestHost(t)
	win := h.OpenWindow("main", doc)

	var overs, moves []port.PointerEvent
	h.Registrar().OnPointerOver(win, func(ev port.PointerEvent) { overs = append(overs, ev) })
	h.Registrar().OnPointerMove(win, func(ev port.PointerEvent) { moves = append(moves, ev) })

	a := doc.MustQueryOne("#a")
	b := doc.MustQueryOne("#b")

	h.MovePointer("main", entity.Point{X: 110, Y: 110}, port.Modifiers{})
	h.MovePointer("main", entity.Point{X: 120, Y: 112}, port.Modifiers{})
	h.MovePointer("main", entity.Point{X: 110, Y: 210}, port.Modifiers{Ctrl: true})

	require.Len(t, overs, 2)
	assert.Equal(t, port.Node(a), overs[0].Target)
	assert.Nil(t, overs[0].RelatedTarget)
	assert.Equal(t, port.Node(b), overs[1].Target)
	assert.Equal(t, port.Node(a), overs[1].RelatedTarget)
	assert.True(t, overs[1].Modifiers.Ctrl)
	assert.Len(t, moves, 3)
}

func TestHost_MovePointerOverPanelSkipsPage(t *testing.T) {
	h, doc := newTestHost(t)
	win := h.OpenWindow("main", doc)

	var overs []port.PointerEvent
	h.Registrar().OnPointerOver(win, func(ev port.PointerEvent) { overs = append(overs, ev) })

	panel := h.Panels().NewPanel(doc).(*Panel)
	panel.SetGeometry(entity.Rect{Left: 90, Top: 150, Width: 200, Height: 100})

	h.MovePointer("main", entity.Point{X: 110, Y: 210}, port.Modifiers{})
	require.Len(t, overs, 1)
	assert.True(t, overs[0].Target == panel.Element())

	panel.Detach()
	h.MovePointer("main", entity.Point{X: 112, Y: 210}, port.Modifiers{})
	require.Len(t, overs, 2)
	assert.Equal(t, port.Node(doc.MustQueryOne("#b")), overs[1].Target)
}

func TestHost_UnknownWindowIgnored(t *testing.T) {
	h, _ := newTestHost(t)
	assert.NotPanics(t, func() {
		h.MovePointer("missing", entity.Point{X: 1, Y: 1}, port.Modifiers{})
	})
}

func TestHost_OpenWindowNotifiesListeners(t *testing.T) {
	h, doc := newTestHost(t)
	var opened []string
	h.Registrar().OnWindowOpen(func(w port.Window) { opened = append(opened, w.ID()) })

	h.OpenWindow("one", doc)
	h.OpenWindow("two", doc)

	assert.Equal(t, []string{"one", "two"}, opened)
	assert.Len(t, h.Workspace().Windows(), 2)
}

func TestHost_OnLayoutReady(t *testing.T) {
	h, _ := newTestHost(t)
	calls := 0
	h.OnLayoutReady(func() { calls++ })
	assert.Equal(t, 0, calls)

	h.MarkLayoutReady()
	h.MarkLayoutReady()
	assert.Equal(t, 1, calls)

	h.OnLayoutReady(func() { calls++ })
	assert.Equal(t, 2, calls, "runs immediately once ready")
}

type stubLifecycle struct {
	loaded, unloaded int
}

func (s *stubLifecycle) OnLoad(context.Context) error { s.loaded++; return nil }
func (s *stubLifecycle) OnUnload(context.Context)     { s.unloaded++ }

func TestHost_UnloadClearsListeners(t *testing.T) {
	h, doc := newTestHost(t)
	win := h.OpenWindow("main", doc)
	plugin := &stubLifecycle{}
	require.NoError(t, h.Load(context.Background(), plugin))

	fired := 0
	h.Registrar().OnKeyDown(win, func(port.KeyEvent) { fired++ })
	h.Registrar().OnWindowOpen(func(port.Window) { fired++ })
	assert.Equal(t, 2, h.SimRegistrar().ListenerCount())

	h.Unload(context.Background(), plugin)
	assert.Equal(t, 1, plugin.unloaded)
	assert.Zero(t, h.SimRegistrar().ListenerCount())

	h.KeyDown("main", "Escape", port.Modifiers{})
	h.OpenWindow("other", doc)
	assert.Zero(t, fired)
}

func TestWorkspace_ActiveEditor(t *testing.T) {
	ws := NewWorkspace()
	_, ok := ws.ActiveEditor()
	assert.False(t, ok)

	ed := NewEditor("[x](https://x.dev)", port.EditorModeLivePreview)
	ws.SetActiveEditor(ed)
	got, ok := ws.ActiveEditor()
	require.True(t, ok)
	assert.Equal(t, port.EditorModeLivePreview, got.Mode())

	ed.SetText("changed")
	assert.Equal(t, "changed", got.Text())

	ws.SetActiveEditor(nil)
	_, ok = ws.ActiveEditor()
	assert.False(t, ok)
}

type blockingEngine struct {
	started chan struct{}
	done    chan error
}

func (e *blockingEngine) Name() string { return "blocking" }

func (e *blockingEngine) Load(ctx context.Context, _ string) error {
	close(e.started)
	<-ctx.Done()
	e.done <- ctx.Err()
	return ctx.Err()
}

func TestPanel_EmbedReportsLoad(t *testing.T) {
	r := NewPanelRenderer(context.Background(), &embed.OfflineEngine{})
	p := r.NewPanel(nil)

	loaded := make(chan struct{})
	p.Embed("https://example.com", port.EmbedCallbacks{
		OnLoad:  func() { close(loaded) },
		OnError: func(err error) { t.Errorf("unexpected error: %v", err) },
	})

	select {
	case <-loaded:
	case <-time.After(2 * time.Second):
		t.Fatal("embed did not load")
	}
	r.Wait()
	assert.Equal(t, "https://example.com", r.Panels()[0].URL())
}

func TestPanel_EmbedReportsRefusal(t *testing.T) {
	r := NewPanelRenderer(context.Background(), &embed.OfflineEngine{Refuse: []string{"github.com"}})
	p := r.NewPanel(nil)

	failed := make(chan error, 1)
	p.Embed("https://gist.github.com/x", port.EmbedCallbacks{
		OnLoad:  func() { t.Error("unexpected load") },
		OnError: func(err error) { failed <- err },
	})
	r.Wait()

	select {
	case err := <-failed:
		assert.True(t, errors.Is(err, embed.ErrEmbedRefused))
	default:
		t.Fatal("no error reported")
	}
}

func TestPanel_DetachCancelsLoad(t *testing.T) {
	engine := &blockingEngine{started: make(chan struct{}), done: make(chan error, 1)}
	r := NewPanelRenderer(context.Background(), engine)
	p := r.NewPanel(nil)

	p.Embed("https://example.com", port.EmbedCallbacks{
		OnLoad:  func() { t.Error("unexpected load") },
		OnError: func(error) { t.Error("callbacks must not run after detach") },
	})
	<-engine.started
	p.Detach()
	p.Detach()
	r.Wait()

	assert.ErrorIs(t, <-engine.done, context.Canceled)
	assert.Empty(t, r.Attached())
}

func TestPanel_EmbedReplacesPendingLoad(t *testing.T) {
	started := make(chan struct{})
	engine := portmocks.NewMockEmbedEngine(t)
	engine.EXPECT().Load(mock.Anything, "https://a.example").
		RunAndReturn(func(ctx context.Context, _ string) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}).Once()
	engine.EXPECT().Load(mock.Anything, "https://b.example").Return(nil).Once()
	engine.EXPECT().Name().Return("mock").Maybe()

	r := NewPanelRenderer(context.Background(), engine)
	p := r.NewPanel(nil)

	p.Embed("https://a.example", port.EmbedCallbacks{
		OnLoad:  func() { t.Error("replaced load must not report") },
		OnError: func(error) { t.Error("replaced load must not report") },
	})
	<-started

	loaded := make(chan struct{})
	p.Embed("https://b.example", port.EmbedCallbacks{OnLoad: func() { close(loaded) }})
	r.Wait()

	select {
	case <-loaded:
	default:
		t.Fatal("second embed did not load")
	}
	assert.Equal(t, "https://b.example", r.Panels()[0].URL())
}

func TestPanel_ClassesAndIndicator(t *testing.T) {
	r := NewPanelRenderer(context.Background(), &embed.OfflineEngine{})
	p := r.NewPanel(nil).(*Panel)

	p.AddClass(port.PanelClassLoading)
	p.AddClass(port.PanelClassLoading)
	p.AddClass(port.PanelClassGitHubCrop)
	assert.Equal(t, []string{port.PanelClassLoading, port.PanelClassGitHubCrop}, p.Classes())
	p.RemoveClass(port.PanelClassLoading)
	assert.False(t, p.HasClass(port.PanelClassLoading))

	p.SetIndicatorText("ignored")
	_, shown := p.Indicator()
	assert.False(t, shown)

	p.ShowIndicator("Loading")
	p.SetIndicatorText("Failed")
	text, shown := p.Indicator()
	assert.True(t, shown)
	assert.Equal(t, "Failed", text)

	p.RemoveIndicator()
	_, shown = p.Indicator()
	assert.False(t, shown)

	p.SetGeometry(entity.Rect{Left: 1, Top: 2, Width: 3, Height: 4})
	assert.Equal(t, entity.Rect{Left: 1, Top: 2, Width: 3, Height: 4}, p.BoundingRect())
}

type recordingPage struct {
	delay  string
	toggle bool
	mode   string
}

func (p *recordingPage) ID() string    { return "rec" }
func (p *recordingPage) Title() string { return "Recording" }

func (p *recordingPage) Display(ui port.SettingsUI) {
	ui.Heading("Recording")
	ui.Text("Hover delay", "ms", "500", p.delay, func(v string) error {
		if v == "bad" {
			return errors.New("invalid delay")
		}
		p.delay = v
		return nil
	})
	ui.Toggle("Require modifier", "", p.toggle, func(v bool) error { p.toggle = v; return nil })
	ui.Dropdown("Modifier key", "", []port.DropdownOption{{Value: "ctrl", Label: "Ctrl"}, {Value: "alt", Label: "Alt"}}, p.mode,
		func(v string) error { p.mode = v; return nil })
}

func TestSettingsRecorder(t *testing.T) {
	page := &recordingPage{delay: "500", mode: "ctrl"}
	rec := NewSettingsRecorder()
	rec.Render(page)

	widgets := rec.Widgets()
	require.Len(t, widgets, 4)
	assert.Equal(t, WidgetHeading, widgets[0].Kind)
	assert.Equal(t, "500", widgets[1].Value)

	require.NoError(t, rec.Set("hover delay", "250"))
	assert.Equal(t, "250", page.delay)

	err := rec.Set("Hover delay", "bad")
	require.Error(t, err)
	w, _ := rec.Widget("Hover delay")
	assert.Equal(t, "250", w.Value, "rejected values are not recorded")

	require.NoError(t, rec.Set("Require modifier", "true"))
	assert.True(t, page.toggle)
	assert.Error(t, rec.Set("Require modifier", "maybe"))

	require.NoError(t, rec.Set("Modifier key", "alt"))
	assert.Equal(t, "alt", page.mode)
	assert.Error(t, rec.Set("Modifier key", "hyper"))

	assert.Error(t, rec.Set("Unknown", "x"))
}

type immediateScheduler struct {
	posted chan func()
}

func (s *immediateScheduler) Post(fn func()) { s.posted <- fn }
func (s *immediateScheduler) AfterFunc(time.Duration, func()) port.Timer {
	panic("not used")
}
func (s *immediateScheduler) Now() time.Time { return time.Now() }

func TestDocumentWatcher_PostsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))

	sched := &immediateScheduler{posted: make(chan func(), 16)}
	got := make(chan string, 16)
	w := NewDocumentWatcher(path, sched, func(content string) { got <- content })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("second"), 0o600); err != nil {
			return false
		}
		select {
		case fn := <-sched.posted:
			fn()
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, "second", <-got)

	cancel()
	require.NoError(t, <-done)
}
