package render

import (
	"golang.org/x/net/html"

	"fieldnote.dev/consultant-site/internal/content"
)

// frameSandbox is the sandbox granted to the embed iframe when only a form
// URL is configured. Third-party form embeds need scripts, same-origin
// storage, form posts, and popups for their confirmation flows.
const frameSandbox = "allow-scripts allow-same-origin allow-forms allow-popups"

// Contact wires the three contact affordances and the form embed. Exactly
// one of embed container, iframe, and placeholder stays visible.
func Contact(p *Page, sec content.Contact) {
	sec = sec.Defaulted()

	// The email button deliberately scrolls to the in-page contact form
	// instead of opening a mail client, whatever address the document holds.
	if email := p.ByID(IDContactEmail); email != nil {
		setAttr(email, "href", ContactAnchor)
		removeAttr(email, "target")
		removeAttr(email, "rel")
	}

	setSocialLink(p.ByID(IDContactLinkedIn), sec.LinkedIn)
	setSocialLink(p.ByID(IDContactGitHub), sec.GitHub)

	embedHost := p.ByID(IDFilloutEmbed)
	frame := p.ByID(IDFilloutFrame)
	placeholder := p.ByID(IDFilloutPlaceholder)

	if embedHost != nil {
		removeChildren(embedHost)
	}

	switch {
	case sec.FilloutEmbedCode != "" && embedHost != nil:
		InjectEmbed(embedHost, sec.FilloutEmbedCode)
		setHidden(embedHost, false)
		setHidden(frame, true)
		setHidden(placeholder, true)
	case sec.FilloutEmbedURL != "" && frame != nil:
		setAttr(frame, "src", sec.FilloutEmbedURL)
		setAttr(frame, "sandbox", frameSandbox)
		setHidden(frame, false)
		setHidden(embedHost, true)
		setHidden(placeholder, true)
	default:
		setHidden(embedHost, true)
		setHidden(frame, true)
		setHidden(placeholder, false)
	}
}

// setSocialLink enables an external profile link, or leaves an inert
// disabled anchor when no URL is configured rather than dropping the
// element.
func setSocialLink(a *html.Node, url string) {
	if a == nil {
		return
	}
	if url == "" {
		setAttr(a, "href", "#")
		setAttr(a, "aria-disabled", "true")
		setAttr(a, "tabindex", "-1")
		removeAttr(a, "target")
		removeAttr(a, "rel")
		return
	}
	setAttr(a, "href", url)
	setAttr(a, "target", "_blank")
	setAttr(a, "rel", "noopener noreferrer")
	removeAttr(a, "aria-disabled")
	removeAttr(a, "tabindex")
}
