package render

import (
	"strings"

	"golang.org/x/net/html"

	"fieldnote.dev/consultant-site/internal/content"
)

// Services fills the intro paragraph and one card per service. Description
// and bullet list are appended only when present and non-empty.
func Services(p *Page, sec content.Services) {
	sec = sec.Defaulted()

	if intro := p.ByID(IDServicesIntro); intro != nil {
		setProse(intro, sec.Intro)
	}

	cards := p.ByID(IDServicesCards)
	if cards == nil {
		return
	}
	removeChildren(cards)
	for _, svc := range sec.Services {
		cards.AppendChild(serviceCard(svc))
	}
}

func serviceCard(svc content.Service) *html.Node {
	card := elem("div", attr("class", "card service-card"))

	title := elem("h3")
	setText(title, svc.Name)
	card.AppendChild(title)

	if strings.TrimSpace(svc.Description) != "" {
		desc := elem("p", attr("class", "card-description"))
		setProse(desc, svc.Description)
		card.AppendChild(desc)
	}

	if len(svc.Bullets) > 0 {
		list := elem("ul", attr("class", "card-bullets"))
		for _, b := range svc.Bullets {
			li := elem("li")
			setText(li, b)
			list.AppendChild(li)
		}
		card.AppendChild(list)
	}
	return card
}
