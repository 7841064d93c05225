package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"fieldnote.dev/consultant-site/internal/content"
	"fieldnote.dev/consultant-site/internal/seo"
)

const jsonLDType = "application/ld+json"

// Head fills the document head from the bio and contact sections: the page
// title, the meta description, and a schema.org Person block. Re-invoking
// replaces what an earlier pass wrote.
func Head(p *Page, doc content.Document) {
	head := findElement(p.root, atom.Head)
	if head == nil {
		return
	}
	meta := seo.FromDocument(doc)

	if title := findElement(head, atom.Title); title != nil {
		setText(title, meta.Title)
	}
	if meta.Description != "" {
		if desc := findMeta(head, "description"); desc != nil {
			setAttr(desc, "content", meta.Description)
		} else {
			head.AppendChild(elem("meta",
				attr("name", "description"),
				attr("content", meta.Description),
			))
		}
	}

	if ld := seo.JSON(seo.Person(doc)); ld != "" {
		script := findJSONLD(head)
		if script == nil {
			script = elem("script", attr("type", jsonLDType))
			head.AppendChild(script)
		}
		setText(script, ld)
	}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findMeta(head *html.Node, name string) *html.Node {
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Meta && attrValue(c, "name") == name {
			return c
		}
	}
	return nil
}

func findJSONLD(head *html.Node) *html.Node {
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Script && attrValue(c, "type") == jsonLDType {
			return c
		}
	}
	return nil
}
