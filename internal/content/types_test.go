package content

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecodeFullDocument(t *testing.T) {
	t.Parallel()

	raw := `{
		"bio": {
			"name": "Ada Lovelace",
			"title": "Analytical Engineer",
			"location": "London",
			"summary": ["First paragraph.", "Second paragraph."],
			"highlights": ["Wrote the first program"]
		},
		"services": {
			"intro": "What I offer.",
			"services": [
				{"name": "Consulting", "description": "Advice.", "bullets": ["a", "b"]}
			]
		},
		"projects": {
			"intro": "Selected work.",
			"projects": [
				{"name": "Engine", "description": "A machine.", "tech": ["Go", "Rust"],
				 "links": [{"url": "https://example.com", "label": "Docs"}]}
			]
		},
		"contact": {
			"email": "ada@example.com",
			"linkedin": "https://linkedin.com/in/ada",
			"github": "https://github.com/ada",
			"filloutEmbedCode": "",
			"filloutEmbedUrl": "https://forms.example.com/f/1"
		}
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	want := Document{
		Bio: Bio{
			Name:       "Ada Lovelace",
			Title:      "Analytical Engineer",
			Location:   "London",
			Summary:    StringList{"First paragraph.", "Second paragraph."},
			Highlights: StringList{"Wrote the first program"},
		},
		Services: Services{
			Intro: "What I offer.",
			Services: ServiceList{
				{Name: "Consulting", Description: "Advice.", Bullets: StringList{"a", "b"}},
			},
		},
		Projects: Projects{
			Intro: "Selected work.",
			Projects: ProjectList{
				{
					Name:        "Engine",
					Description: "A machine.",
					Tech:        StringList{"Go", "Rust"},
					Links:       LinkList{{URL: "https://example.com", Label: "Docs"}},
				},
			},
		},
		Contact: Contact{
			Email:           "ada@example.com",
			LinkedIn:        "https://linkedin.com/in/ada",
			GitHub:          "https://github.com/ada",
			FilloutEmbedURL: "https://forms.example.com/f/1",
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("decoded document mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeToleratesWrongShapes(t *testing.T) {
	t.Parallel()

	// Arrays replaced by scalars and objects must decode as empty, not fail.
	raw := `{
		"bio": {"name": "Ada", "summary": "not an array", "highlights": 42},
		"services": {"intro": "hi", "services": {"name": "oops"}},
		"projects": {"projects": "nope"}
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Equal(t, "Ada", doc.Bio.Name)
	require.Empty(t, doc.Bio.Summary)
	require.Empty(t, doc.Bio.Highlights)
	require.Equal(t, "hi", doc.Services.Intro)
	require.Empty(t, doc.Services.Services)
	require.Empty(t, doc.Projects.Projects)
}

func TestDecodeEmptyObject(t *testing.T) {
	t.Parallel()

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{}`), &doc))
	require.Equal(t, Document{}, doc)
}

func TestBioDefaulted(t *testing.T) {
	t.Parallel()

	got := Bio{}.Defaulted()
	require.Equal(t, DefaultName, got.Name)
	require.Equal(t, DefaultTitle, got.Title)
	require.Equal(t, DefaultLocation, got.Location)
	require.NotNil(t, got.Summary)
	require.NotNil(t, got.Highlights)

	// Whitespace-only scalars count as absent.
	got = Bio{Name: "  ", Title: "\t"}.Defaulted()
	require.Equal(t, DefaultName, got.Name)
	require.Equal(t, DefaultTitle, got.Title)

	// Real values survive untouched.
	got = Bio{Name: "Ada", Title: "Engineer", Location: "London"}.Defaulted()
	require.Equal(t, "Ada", got.Name)
	require.Equal(t, "Engineer", got.Title)
	require.Equal(t, "London", got.Location)
}

func TestContactDefaultedTrims(t *testing.T) {
	t.Parallel()

	got := Contact{
		Email:           "  ada@example.com ",
		LinkedIn:        " ",
		FilloutEmbedURL: "\nhttps://forms.example.com/f/1\n",
	}.Defaulted()

	require.Equal(t, "ada@example.com", got.Email)
	require.Equal(t, "", got.LinkedIn)
	require.Equal(t, "https://forms.example.com/f/1", got.FilloutEmbedURL)
}
