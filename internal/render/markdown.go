package render

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

// Prose fields (summary paragraphs, intros, descriptions) accept inline
// Markdown. Output is sanitized down to a small inline vocabulary before it
// touches the page tree; plain text passes through byte-identical.

var md = goldmark.New()

var prosePolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements("a", "em", "strong", "code", "del", "br")
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}()

// setProse replaces an element's children with the rendered inline form of
// src. A lone wrapping paragraph from the Markdown renderer is unwrapped so
// the target element keeps its own tag.
func setProse(n *html.Node, src string) {
	if n == nil {
		return
	}
	removeChildren(n)
	for _, child := range proseNodes(src) {
		n.AppendChild(child)
	}
}

func proseNodes(src string) []*html.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return []*html.Node{textNode(src)}
	}
	// The block renderer wraps output as <p>...</p> with a trailing newline.
	// The policy strips the tags; the trim drops the wrapper newline so
	// plain text comes out byte-identical to the source.
	safe := bytes.TrimSpace(prosePolicy.SanitizeBytes(buf.Bytes()))

	ctx := elem("div")
	parsed, err := html.ParseFragment(bytes.NewReader(safe), ctx)
	if err != nil {
		return []*html.Node{textNode(string(safe))}
	}
	parsed = trimBlankText(parsed)
	out := make([]*html.Node, 0, len(parsed))
	for _, n := range parsed {
		out = append(out, cloneNode(n))
	}
	return out
}

func trimBlankText(nodes []*html.Node) []*html.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}
