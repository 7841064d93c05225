package render

import (
	"strconv"
	"time"

	"fieldnote.dev/consultant-site/internal/content"
)

// Element ids the host page must provide. They are the seam between this
// package and the surrounding markup.
const (
	IDSiteName           = "site-name"
	IDSiteTitle          = "site-title"
	IDSiteLocation       = "site-location"
	IDBioSummary         = "bio-summary"
	IDBioHighlights      = "bio-highlights"
	IDServicesIntro      = "services-intro"
	IDServicesCards      = "services-cards"
	IDProjectsIntro      = "projects-intro"
	IDProjectsCards      = "projects-cards"
	IDContactEmail       = "contact-email"
	IDContactLinkedIn    = "contact-linkedin"
	IDContactGitHub      = "contact-github"
	IDFilloutEmbed       = "fillout-embed"
	IDFilloutFrame       = "fillout-iframe"
	IDFilloutPlaceholder = "fillout-placeholder"
	IDFooterText         = "footer-text"
	IDFooterYear         = "footer-year"
)

// ContactAnchor is where the email affordance always points, regardless of
// the address in the document. Documented behavior, not a fallback.
const ContactAnchor = "#contact"

// SetYear writes the current year into the footer. It runs before the
// content load so the footer is correct even when the load fails.
func SetYear(p *Page, now time.Time) {
	year := strconv.Itoa(now.Year())
	if n := p.ByID(IDFooterYear); n != nil {
		setText(n, year)
		return
	}
	if n := p.ByID(IDFooterText); n != nil {
		setText(n, "© "+year)
	}
}

// Paint fills the head and runs the four section renderers in order over a
// loaded document.
func Paint(p *Page, doc content.Document) {
	Head(p, doc)
	Bio(p, doc.Bio)
	Services(p, doc.Services)
	Projects(p, doc.Projects)
	Contact(p, doc.Contact)
}
