package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linkpeek/internal/application/port"
	portmocks "github.com/bnema/linkpeek/internal/application/port/mocks"
	"github.com/bnema/linkpeek/internal/infrastructure/htmldom"
)

const readingBody = `<div class="markdown-preview-view">
<p>Visit <a id="ext" class="external-link" href="https://example.com"><strong id="inner">Example</strong></a>.</p>
<p><a id="internal" class="internal-link" href="note.md">Note</a></p>
<p><span id="data" data-href="https://data.test">data link</span></p>
<p><span id="plain">plain text</span></p>
</div>`

const liveBody = `<div class="cm-editor"><div class="cm-content">
<div class="cm-line">See <span class="cm-link"><span id="u1" class="cm-underline">Example</span></span></div>
<div class="cm-line">And <span class="cm-link"><span id="u2" class="cm-underline">Example Docs</span></span></div>
<div class="cm-line">Raw <span id="raw" class="cm-url">https://raw.test</span></div>
<div class="cm-line">Bare <span class="cm-link"><span id="u3" class="cm-underline">Unmatched</span></span></div>
</div></div>`

const liveSource = "See [Example](https://example.org)\nAnd [Example Docs](https://docs.example.org)\n"

func TestLocate_ReadingView(t *testing.T) {
	ctx := context.Background()
	doc := parseDoc(t, readingBody)
	uc := NewLocateLinkUseCase(nil, nil)

	t.Run("pointer on child of external anchor", func(t *testing.T) {
		cand, ok := uc.Locate(ctx, doc.MustQueryOne("#inner"), nil)
		require.True(t, ok)
		assert.Equal(t, "https://example.com", cand.URL)
		assert.True(t, cand.Element == doc.MustQueryOne("#ext"))
	})

	t.Run("pointer on text node", func(t *testing.T) {
		text := htmldom.TextNodes(doc.MustQueryOne("#inner"))
		require.Len(t, text, 1)
		cand, ok := uc.Locate(ctx, text[0], nil)
		require.True(t, ok)
		assert.Equal(t, "https://example.com", cand.URL)
	})

	t.Run("related target inside the same link", func(t *testing.T) {
		_, ok := uc.Locate(ctx, doc.MustQueryOne("#inner"), doc.MustQueryOne("#ext"))
		assert.False(t, ok)
	})

	t.Run("related target outside the link", func(t *testing.T) {
		_, ok := uc.Locate(ctx, doc.MustQueryOne("#inner"), doc.MustQueryOne("#plain"))
		assert.True(t, ok)
	})

	t.Run("internal link is not link-like", func(t *testing.T) {
		_, ok := uc.Locate(ctx, doc.MustQueryOne("#internal"), nil)
		assert.False(t, ok)
	})

	t.Run("data-href element", func(t *testing.T) {
		cand, ok := uc.Locate(ctx, doc.MustQueryOne("#data"), nil)
		require.True(t, ok)
		assert.Equal(t, "https://data.test", cand.URL)
	})

	t.Run("plain text", func(t *testing.T) {
		_, ok := uc.Locate(ctx, doc.MustQueryOne("#plain"), nil)
		assert.False(t, ok)
	})

	t.Run("nil target", func(t *testing.T) {
		_, ok := uc.Locate(ctx, nil, nil)
		assert.False(t, ok)
	})
}

func liveWorkspace(t *testing.T, mode port.EditorMode) *portmocks.MockWorkspace {
	t.Helper()
	editor := portmocks.NewMockEditor(t)
	editor.EXPECT().Mode().Return(mode).Maybe()
	editor.EXPECT().Text().Return(liveSource).Maybe()

	ws := portmocks.NewMockWorkspace(t)
	ws.EXPECT().ActiveEditor().Return(editor, true).Maybe()
	return ws
}

func TestLocate_LivePreviewResolvesFromDocumentText(t *testing.T) {
	ctx := context.Background()
	doc := parseDoc(t, liveBody)
	uc := NewLocateLinkUseCase(liveWorkspace(t, port.EditorModeLivePreview), nil)

	cand, ok := uc.Locate(ctx, doc.MustQueryOne("#u1"), nil)
	require.True(t, ok)
	assert.Equal(t, "https://example.org", cand.URL)
	// cm-link is checked before cm-underline but the walk starts at the target.
	assert.True(t, cand.Element == doc.MustQueryOne("#u1"))

	cand, ok = uc.Locate(ctx, doc.MustQueryOne("#u2"), nil)
	require.True(t, ok)
	// "Example" is a substring of "Example Docs" and appears first in the text.
	assert.Equal(t, "https://example.org", cand.URL)
}

func TestLocate_LivePreviewFallsBackToExtractor(t *testing.T) {
	ctx := context.Background()
	doc := parseDoc(t, liveBody)
	uc := NewLocateLinkUseCase(liveWorkspace(t, port.EditorModeLivePreview), nil)

	cand, ok := uc.Locate(ctx, doc.MustQueryOne("#raw"), nil)
	require.True(t, ok)
	assert.Equal(t, "https://raw.test", cand.URL)

	_, ok = uc.Locate(ctx, doc.MustQueryOne("#u3"), nil)
	assert.False(t, ok)
}

func TestLocate_SourceModeSkipsTextResolution(t *testing.T) {
	ctx := context.Background()
	doc := parseDoc(t, liveBody)
	uc := NewLocateLinkUseCase(liveWorkspace(t, port.EditorModeSource), nil)

	_, ok := uc.Locate(ctx, doc.MustQueryOne("#u1"), nil)
	assert.False(t, ok)
}

func TestLocate_NoActiveEditor(t *testing.T) {
	ctx := context.Background()
	doc := parseDoc(t, liveBody)

	ws := portmocks.NewMockWorkspace(t)
	ws.EXPECT().ActiveEditor().Return(nil, false).Once()
	uc := NewLocateLinkUseCase(ws, nil)

	cand, ok := uc.Locate(ctx, doc.MustQueryOne("#raw"), nil)
	require.True(t, ok)
	assert.Equal(t, "https://raw.test", cand.URL)
}
