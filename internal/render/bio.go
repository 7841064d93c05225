package render

import "fieldnote.dev/consultant-site/internal/content"

// Bio fills the name, title, location, summary, and highlights containers.
// Safe to call again with new data; prior children are replaced.
func Bio(p *Page, bio content.Bio) {
	bio = bio.Defaulted()

	setText(p.ByID(IDSiteName), bio.Name)
	setText(p.ByID(IDSiteTitle), bio.Title)
	setText(p.ByID(IDSiteLocation), bio.Location)

	if summary := p.ByID(IDBioSummary); summary != nil {
		removeChildren(summary)
		for _, para := range bio.Summary {
			el := elem("p")
			setProse(el, para)
			summary.AppendChild(el)
		}
	}

	if highlights := p.ByID(IDBioHighlights); highlights != nil {
		removeChildren(highlights)
		for _, item := range bio.Highlights {
			li := elem("li")
			setText(li, item)
			highlights.AppendChild(li)
		}
	}
}
