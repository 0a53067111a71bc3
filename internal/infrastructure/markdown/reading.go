// Package markdown renders markdown documents into the two document
// surfaces linkpeek previews links in: the reading view and the
// live-preview editor.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	urlutil "github.com/bnema/linkpeek/internal/domain/url"
)

// Reading view container and link classes.
const (
	ReadingViewClass  = "markdown-reading-view"
	ExternalLinkClass = "external-link"
	InternalLinkClass = "internal-link"
)

// ReadingRenderer renders markdown into reading-view HTML.
type ReadingRenderer struct {
	md goldmark.Markdown
}

// NewReadingRenderer creates a renderer with GFM and external-link marking.
func NewReadingRenderer() *ReadingRenderer {
	return &ReadingRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithExtensions(&externalLinks{}),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts src into a complete HTML document.
func (r *ReadingRenderer) Render(src []byte) (string, error) {
	var body bytes.Buffer
	if err := r.md.Convert(src, &body); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`<html><body><div class="` + ReadingViewClass + `">`)
	sb.Write(body.Bytes())
	sb.WriteString(`</div></body></html>`)
	return sb.String(), nil
}

type externalLinks struct{}

func (e *externalLinks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&externalLinkTransformer{}, 100),
	))
}

type externalLinkTransformer struct{}

func (t *externalLinkTransformer) Transform(node *ast.Document, reader text.Reader, _ parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch link := n.(type) {
		case *ast.Link:
			markLink(link, link.Destination)
		case *ast.AutoLink:
			if link.AutoLinkType == ast.AutoLinkURL {
				markLink(link, link.URL(reader.Source()))
			}
		}
		return ast.WalkContinue, nil
	})
}

func markLink(n ast.Node, dest []byte) {
	if urlutil.HasHTTPPrefix(strings.TrimSpace(string(dest))) {
		n.SetAttributeString("class", []byte(ExternalLinkClass))
		n.SetAttributeString("target", []byte("_blank"))
		n.SetAttributeString("rel", []byte("noopener nofollow"))
		return
	}
	n.SetAttributeString("class", []byte(InternalLinkClass))
}
