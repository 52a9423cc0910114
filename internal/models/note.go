// Package models defines the domain types for the voice inbox converter.
package models

// Frontmatter is the fixed-schema metadata block prepended to every
// converted note. Field order matches the rendered key order.
type Frontmatter struct {
	Type            string   `yaml:"type" json:"type"`
	Created         string   `yaml:"created" json:"created"`
	Source          string   `yaml:"source" json:"source"`
	TemplateVersion int      `yaml:"template_version" json:"template_version"`
	Areas           []string `yaml:"areas" json:"areas"`
	Projects        []string `yaml:"projects" json:"projects"`
	Summary         string   `yaml:"summary" json:"summary"`
}

// Note is a parsed note document: frontmatter plus Markdown body.
type Note struct {
	Frontmatter *Frontmatter `json:"frontmatter,omitempty"`
	Body        string       `json:"body"`
}
