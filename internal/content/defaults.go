package content

import "strings"

// Fallback values substituted for absent scalar fields. Array fields default
// to empty; intros and contact fields default to the empty string.
const (
	DefaultName     = "Your Name"
	DefaultTitle    = "AI Consultant"
	DefaultLocation = "Remote"
)

// Defaulted returns a copy of the bio with every fallback applied. This is
// the one defaulting step; renderers never substitute per-field.
func (b Bio) Defaulted() Bio {
	out := b
	if strings.TrimSpace(out.Name) == "" {
		out.Name = DefaultName
	}
	if strings.TrimSpace(out.Title) == "" {
		out.Title = DefaultTitle
	}
	if strings.TrimSpace(out.Location) == "" {
		out.Location = DefaultLocation
	}
	if out.Summary == nil {
		out.Summary = StringList{}
	}
	if out.Highlights == nil {
		out.Highlights = StringList{}
	}
	return out
}

// Defaulted returns a copy of the services section with fallbacks applied.
func (s Services) Defaulted() Services {
	out := s
	if out.Services == nil {
		out.Services = ServiceList{}
	}
	return out
}

// Defaulted returns a copy of the projects section with fallbacks applied.
func (p Projects) Defaulted() Projects {
	out := p
	if out.Projects == nil {
		out.Projects = ProjectList{}
	}
	return out
}

// Defaulted trims contact fields so presence checks are whitespace-proof.
func (c Contact) Defaulted() Contact {
	return Contact{
		Email:            strings.TrimSpace(c.Email),
		LinkedIn:         strings.TrimSpace(c.LinkedIn),
		GitHub:           strings.TrimSpace(c.GitHub),
		FilloutEmbedCode: strings.TrimSpace(c.FilloutEmbedCode),
		FilloutEmbedURL:  strings.TrimSpace(c.FilloutEmbedURL),
	}
}

// Defaulted normalizes the whole document in one pass.
func (d Document) Defaulted() Document {
	return Document{
		Bio:      d.Bio.Defaulted(),
		Services: d.Services.Defaulted(),
		Projects: d.Projects.Defaulted(),
		Contact:  d.Contact.Defaulted(),
	}
}
