package seo

import (
	"encoding/json"

	"fieldnote.dev/consultant-site/internal/content"
)

// JSON marshals v to a compact JSON string, or "" on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Person builds a schema.org Person block from the bio and contact sections.
func Person(doc content.Document) map[string]any {
	bio := doc.Bio.Defaulted()
	contact := doc.Contact.Defaulted()

	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     bio.Name,
		"jobTitle": bio.Title,
	}
	if bio.Location != "" {
		m["address"] = map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": bio.Location,
		}
	}
	if contact.Email != "" {
		m["email"] = "mailto:" + contact.Email
	}
	var sameAs []string
	for _, u := range []string{contact.LinkedIn, contact.GitHub} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}
