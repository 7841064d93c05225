// Package render materializes the content document into the host page's
// HTML tree. The host markup owns layout and styling; this package only
// fills a fixed set of container elements, replacing their children on every
// pass.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page wraps a parsed host document and indexes elements by id.
type Page struct {
	root *html.Node
	ids  map[string]*html.Node
}

// ParsePage parses host markup into a Page.
func ParsePage(r io.Reader) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("render: parse host page: %w", err)
	}
	p := &Page{root: root, ids: map[string]*html.Node{}}
	p.index(root)
	return p, nil
}

// ParsePageString parses host markup from a string.
func ParsePageString(s string) (*Page, error) {
	return ParsePage(strings.NewReader(s))
}

func (p *Page) index(n *html.Node) {
	if n.Type == html.ElementNode {
		if id := attrValue(n, "id"); id != "" {
			if _, ok := p.ids[id]; !ok {
				p.ids[id] = n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.index(c)
	}
}

// ByID returns the element carrying the given id, or nil.
func (p *Page) ByID(id string) *html.Node {
	return p.ids[id]
}

// WriteTo serializes the page.
func (p *Page) WriteTo(w io.Writer) error {
	return html.Render(w, p.root)
}

// String serializes the page to a string, primarily for tests.
func (p *Page) String() string {
	var b strings.Builder
	_ = html.Render(&b, p.root)
	return b.String()
}

func elem(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attr = out
}

// setHidden toggles the boolean hidden attribute; visibility of the contact
// embed containers is driven entirely through it.
func setHidden(n *html.Node, hidden bool) {
	if n == nil {
		return
	}
	if hidden {
		setAttr(n, "hidden", "")
		return
	}
	removeAttr(n, "hidden")
}

// removeChildren detaches every child, giving full-replace semantics.
func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// setText replaces an element's children with a single text node.
func setText(n *html.Node, s string) {
	if n == nil {
		return
	}
	removeChildren(n)
	n.AppendChild(textNode(s))
}

// nodeText concatenates the text children of a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// cloneNode deep-copies a node so the parsed source stays detached.
func cloneNode(n *html.Node) *html.Node {
	cp := &html.Node{
		Type:     n.Type,
		Data:     n.Data,
		DataAtom: n.DataAtom,
		Attr:     append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cp.AppendChild(cloneNode(c))
	}
	return cp
}
