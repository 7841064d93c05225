package render

import (
	"strings"

	"golang.org/x/net/html"

	"fieldnote.dev/consultant-site/internal/content"
)

// Projects fills the intro paragraph and one card per project. The tech meta
// line and links row appear only when their source fields carry items.
func Projects(p *Page, sec content.Projects) {
	sec = sec.Defaulted()

	if intro := p.ByID(IDProjectsIntro); intro != nil {
		setProse(intro, sec.Intro)
	}

	cards := p.ByID(IDProjectsCards)
	if cards == nil {
		return
	}
	removeChildren(cards)
	for _, prj := range sec.Projects {
		cards.AppendChild(projectCard(prj))
	}
}

func projectCard(prj content.Project) *html.Node {
	card := elem("div", attr("class", "card project-card"))

	title := elem("h3")
	setText(title, prj.Name)
	card.AppendChild(title)

	if strings.TrimSpace(prj.Description) != "" {
		desc := elem("p", attr("class", "card-description"))
		setProse(desc, prj.Description)
		card.AppendChild(desc)
	}

	if len(prj.Tech) > 0 {
		meta := elem("div", attr("class", "project-tech"))
		setText(meta, "Tech: "+strings.Join(prj.Tech, ", "))
		card.AppendChild(meta)
	}

	if len(prj.Links) > 0 {
		row := elem("div", attr("class", "project-links"))
		for _, link := range prj.Links {
			if strings.TrimSpace(link.URL) == "" {
				continue
			}
			row.AppendChild(projectLink(link))
		}
		if row.FirstChild != nil {
			card.AppendChild(row)
		}
	}
	return card
}

// projectLink opens in a new browsing context without leaking a referrer.
func projectLink(link content.Link) *html.Node {
	label := strings.TrimSpace(link.Label)
	if label == "" {
		label = link.URL
	}
	a := elem("a",
		attr("href", link.URL),
		attr("target", "_blank"),
		attr("rel", "noopener noreferrer"),
	)
	setText(a, label)
	return a
}
