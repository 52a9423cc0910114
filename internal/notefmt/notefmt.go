// Package notefmt renders and parses transcription notes: a YAML
// frontmatter block between --- fences followed by a Markdown body.
package notefmt

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/voiceinbox/internal/models"
)

const delim = "---"

// Render produces the canonical note document: frontmatter keys in fixed
// order, a blank line, then the body with a trailing newline. The keys
// are written by hand rather than via yaml.Marshal because the target
// note app expects plain scalars (yaml.v3 quotes date-like strings).
func Render(fm models.Frontmatter, body string) string {
	var b strings.Builder
	b.WriteString(delim + "\n")
	fmt.Fprintf(&b, "type: %s\n", fm.Type)
	fmt.Fprintf(&b, "created: %s\n", fm.Created)
	fmt.Fprintf(&b, "source: %s\n", fm.Source)
	fmt.Fprintf(&b, "template_version: %d\n", fm.TemplateVersion)
	fmt.Fprintf(&b, "areas: %s\n", flowList(fm.Areas))
	fmt.Fprintf(&b, "projects: %s\n", flowList(fm.Projects))
	fmt.Fprintf(&b, "summary: %q\n", fm.Summary)
	b.WriteString(delim + "\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// flowList renders a string slice as a YAML flow sequence, e.g. "[]" or
// "[a, b]".
func flowList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// Parse separates the YAML frontmatter (between leading --- delimiters)
// from the body. If no frontmatter is found, or the YAML block does not
// decode, the entire content is treated as body.
func Parse(data []byte) (*models.Note, error) {
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return &models.Note{Body: string(data)}, nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter — treat everything as body.
		return &models.Note{Body: string(data)}, nil
	}

	yamlBlock := rest[:idx]
	// Body starts after the closing delimiter line.
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm models.Frontmatter
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		return &models.Note{Body: string(data)}, nil
	}

	return &models.Note{Frontmatter: &fm, Body: body}, nil
}
