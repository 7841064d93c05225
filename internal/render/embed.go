package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InjectEmbed parses a raw third-party embed snippet and appends its
// top-level nodes to container. Script elements are rebuilt from scratch
// rather than cloned: a script parsed into a detached tree is inert, and
// browsers only execute freshly constructed script elements when they are
// inserted after the initial page load. Everything else is deep-cloned so
// the parsed snippet stays untouched.
func InjectEmbed(container *html.Node, code string) {
	ctx := elem("div")
	parsed, err := html.ParseFragment(strings.NewReader(code), ctx)
	if err != nil {
		return
	}
	for _, n := range parsed {
		if n.Type == html.ElementNode && n.DataAtom == atom.Script {
			container.AppendChild(freshScript(n))
			continue
		}
		container.AppendChild(cloneNode(n))
	}
}

// freshScript rebuilds a script element, copying all attributes and the
// inline body only when it is non-blank.
func freshScript(src *html.Node) *html.Node {
	s := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     append([]html.Attribute(nil), src.Attr...),
	}
	if body := nodeText(src); strings.TrimSpace(body) != "" {
		s.AppendChild(textNode(body))
	}
	return s
}
