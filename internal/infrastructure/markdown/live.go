package markdown

import (
	"html"
	"regexp"
	"strings"
)

// Live-preview editor classes.
const (
	EditorClass    = "cm-editor"
	ContentClass   = "cm-content"
	LineClass      = "cm-line"
	LinkClass      = "cm-link"
	UnderlineClass = "cm-underline"
	URLClass       = "cm-url"
)

// liveTokenPattern matches inline links first, then bare URLs.
var liveTokenPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)|(https?://[^\s<>()\[\]]+)`)

// RenderLivePreview renders markdown source the way a live-preview editor
// shows it: one cm-line per source line, inline links collapsed to their
// underlined label with the URL hidden, and bare URLs as cm-url tokens.
func RenderLivePreview(src string) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><div class="` + EditorClass + `"><div class="` + ContentClass + `">`)
	for _, line := range strings.Split(strings.TrimRight(src, "\n"), "\n") {
		sb.WriteString(`<div class="` + LineClass + `">`)
		renderLiveLine(&sb, line)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></body></html>`)
	return sb.String()
}

func renderLiveLine(sb *strings.Builder, line string) {
	last := 0
	for _, m := range liveTokenPattern.FindAllStringSubmatchIndex(line, -1) {
		sb.WriteString(html.EscapeString(line[last:m[0]]))
		last = m[1]

		if m[2] >= 0 {
			label := line[m[2]:m[3]]
			sb.WriteString(`<span class="` + LinkClass + `"><span class="` + UnderlineClass + `">`)
			sb.WriteString(html.EscapeString(label))
			sb.WriteString(`</span></span>`)
			continue
		}
		sb.WriteString(`<span class="` + URLClass + `">`)
		sb.WriteString(html.EscapeString(line[m[6]:m[7]]))
		sb.WriteString(`</span>`)
	}
	sb.WriteString(html.EscapeString(line[last:]))
}
