// Package seo derives page metadata and structured data from the content
// document. The render layer applies it to the host page head.
package seo

import (
	"strings"

	"fieldnote.dev/consultant-site/internal/content"
)

// Meta is what ends up in the document head.
type Meta struct {
	Title       string
	Description string
}

// FromDocument builds head metadata from the bio section.
func FromDocument(doc content.Document) Meta {
	bio := doc.Bio.Defaulted()

	title := bio.Name
	if bio.Title != "" {
		title += " | " + bio.Title
	}

	var description string
	if len(bio.Summary) > 0 {
		description = strings.TrimSpace(bio.Summary[0])
	}
	return Meta{Title: title, Description: description}
}
