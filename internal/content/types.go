// Package content defines the site content document: a single JSON object
// holding the four renderable sections (bio, services, projects, contact).
// Nothing in the document is required; decoding is tolerant of missing or
// wrongly shaped fields so a partially broken document still renders.
package content

import "encoding/json"

// Document is the full content document. All sections are optional.
type Document struct {
	Bio      Bio      `json:"bio"`
	Services Services `json:"services"`
	Projects Projects `json:"projects"`
	Contact  Contact  `json:"contact"`
}

// Bio holds the introduction section.
type Bio struct {
	Name       string     `json:"name"`
	Title      string     `json:"title"`
	Location   string     `json:"location"`
	Summary    StringList `json:"summary"`
	Highlights StringList `json:"highlights"`
}

// Services holds the services section.
type Services struct {
	Intro    string      `json:"intro"`
	Services ServiceList `json:"services"`
}

// Service is one offered service card.
type Service struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Bullets     StringList `json:"bullets"`
}

// Projects holds the projects section.
type Projects struct {
	Intro    string      `json:"intro"`
	Projects ProjectList `json:"projects"`
}

// Project is one project card.
type Project struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tech        StringList `json:"tech"`
	Links       LinkList   `json:"links"`
}

// Link is a labeled URL on a project card.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Contact holds the contact section. FilloutEmbedCode takes precedence over
// FilloutEmbedURL when both are present.
type Contact struct {
	Email            string `json:"email"`
	LinkedIn         string `json:"linkedin"`
	GitHub           string `json:"github"`
	FilloutEmbedCode string `json:"filloutEmbedCode"`
	FilloutEmbedURL  string `json:"filloutEmbedUrl"`
}

// StringList is an ordered list of strings that decodes absent or wrongly
// shaped JSON as empty instead of failing.
type StringList []string

// UnmarshalJSON implements tolerant decoding: any value that is not an array
// of strings yields an empty list.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// ServiceList decodes like StringList: wrong shapes become empty.
type ServiceList []Service

func (l *ServiceList) UnmarshalJSON(data []byte) error {
	var items []Service
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// ProjectList decodes like StringList: wrong shapes become empty.
type ProjectList []Project

func (l *ProjectList) UnmarshalJSON(data []byte) error {
	var items []Project
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// LinkList decodes like StringList: wrong shapes become empty.
type LinkList []Link

func (l *LinkList) UnmarshalJSON(data []byte) error {
	var items []Link
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}
