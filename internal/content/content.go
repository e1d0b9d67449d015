// Package content loads the site's content document: the single JSON file that
// supplies page copy, contact form labels and subject categories.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed content.json
var defaultDocument []byte

type Document struct {
	Site    Site            `json:"site"`
	Contact Contact         `json:"contact"`
	Legal   map[string]Page `json:"legal"`
}

type Site struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type Contact struct {
	Title   string          `json:"title"`
	Methods []ContactMethod `json:"methods"`
	Form    Form            `json:"form"`
}

type ContactMethod struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type Form struct {
	Title  string     `json:"title"`
	Button string     `json:"button"`
	Fields FormFields `json:"fields"`
}

type FormFields struct {
	Name    Field `json:"name"`
	Email   Field `json:"email"`
	Phone   Field `json:"phone"`
	Subject Field `json:"subject"`
	Message Field `json:"message"`
}

type Field struct {
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options,omitempty"`
}

type Page struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Load reads the document at path, or the embedded default when path is empty
func Load(path string) (*Document, error) {
	data := defaultDocument
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content document: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a content document
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content document: %w", err)
	}
	doc.Site.URL = strings.TrimRight(doc.Site.URL, "/")
	return &doc, nil
}

// SubjectOptions lists the configured contact categories in display order
func (d *Document) SubjectOptions() []string {
	return d.Contact.Form.Fields.Subject.Options
}

// DefaultSubject is the first category, preselected by the form's select
func (d *Document) DefaultSubject() string {
	if opts := d.SubjectOptions(); len(opts) > 0 {
		return opts[0]
	}
	return ""
}

// HasSubject reports whether s is a configured category. Any subject is
// accepted when the document configures none.
func (d *Document) HasSubject(s string) bool {
	opts := d.SubjectOptions()
	if len(opts) == 0 {
		return true
	}
	for _, o := range opts {
		if o == s {
			return true
		}
	}
	return false
}
