package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"fieldnote.dev/consultant-site/internal/content"
)

func TestFromDocument(t *testing.T) {
	t.Parallel()

	m := FromDocument(content.Document{
		Bio: content.Bio{
			Name:    "Ada Lovelace",
			Title:   "Analytical Engineer",
			Summary: content.StringList{" First paragraph. ", "Second."},
		},
	})
	require.Equal(t, "Ada Lovelace | Analytical Engineer", m.Title)
	require.Equal(t, "First paragraph.", m.Description)
}

func TestFromDocumentEmpty(t *testing.T) {
	t.Parallel()

	m := FromDocument(content.Document{})
	require.Equal(t, content.DefaultName+" | "+content.DefaultTitle, m.Title)
	require.Empty(t, m.Description)
}

func TestPerson(t *testing.T) {
	t.Parallel()

	p := Person(content.Document{
		Bio: content.Bio{Name: "Ada Lovelace", Title: "Analytical Engineer", Location: "London"},
		Contact: content.Contact{
			Email:    "ada@example.com",
			LinkedIn: "https://linkedin.com/in/ada",
			GitHub:   "https://github.com/ada",
		},
	})

	require.Equal(t, "Person", p["@type"])
	require.Equal(t, "Ada Lovelace", p["name"])
	require.Equal(t, "mailto:ada@example.com", p["email"])
	require.ElementsMatch(t, []string{"https://linkedin.com/in/ada", "https://github.com/ada"}, p["sameAs"])

	addr, ok := p["address"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "London", addr["addressLocality"])

	// The block must serialize cleanly.
	var round map[string]any
	require.NoError(t, json.Unmarshal([]byte(JSON(p)), &round))
}

func TestPersonOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	p := Person(content.Document{})
	require.NotContains(t, p, "email")
	require.NotContains(t, p, "sameAs")
	// Location defaults to Remote, which still yields an address.
	require.Contains(t, p, "address")
}
