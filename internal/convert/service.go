// Package convert implements the transcription-to-note conversion:
// request validation, frontmatter assembly, and filename derivation.
package convert

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/voiceinbox/internal/apperr"
	"github.com/starford/voiceinbox/internal/models"
	"github.com/starford/voiceinbox/internal/notefmt"
)

// ServiceName identifies this service in health responses.
const ServiceName = "voice-inbox-server"

const (
	noteType        = "transcription"
	defaultSource   = "superwhisper"
	templateVersion = 1

	// filenameMarker prefixes every derived filename so captured notes
	// stand out in the target app's inbox.
	filenameMarker = "🎤"
)

// Clock supplies the current time. Injected so tests can pin output.
type Clock func() time.Time

// Service converts raw transcription payloads into structured notes.
// It is stateless; a single instance serves concurrent requests.
type Service struct {
	now Clock
}

// NewService creates a converter using the given clock. A nil clock
// falls back to time.Now.
func NewService(now Clock) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{now: now}
}

// Result is a successful conversion.
type Result struct {
	NoteContent string `json:"noteContent"`
	Filename    string `json:"filename"`
}

// HealthStatus reports service liveness.
type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// payload is the loosely-typed request body. Fields stay untyped so a
// wrong-typed "text" is reported as a field error, not a parse error.
type payload struct {
	Text   any `json:"text"`
	Source any `json:"source"`
}

// Validate checks the convert contract: text must be a string and must
// be non-empty after trimming. Rules run in order; first failure wins.
func (p *payload) Validate() error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Text,
			validation.By(textIsString),
			validation.By(textNotBlank),
		),
	)
	if err == nil {
		return nil
	}
	// Unwrap the per-field sentinel so callers get the exact message.
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		for _, ferr := range fieldErrs {
			return ferr
		}
	}
	return err
}

func textIsString(value any) error {
	if _, ok := value.(string); !ok {
		return apperr.ErrInvalidText
	}
	return nil
}

func textNotBlank(value any) error {
	if s, _ := value.(string); strings.TrimSpace(s) == "" {
		return apperr.ErrEmptyText
	}
	return nil
}

// Convert parses and validates rawBody, then assembles the note document
// and filename from the current clock reading. All failures map to
// apperr sentinels.
func (s *Service) Convert(_ context.Context, rawBody []byte) (*Result, error) {
	var doc any
	if err := json.Unmarshal(rawBody, &doc); err != nil {
		return nil, apperr.ErrMalformedBody
	}

	// A valid JSON document that is not an object has no "text" field.
	obj, _ := doc.(map[string]any)
	p := payload{Text: obj["text"], Source: obj["source"]}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(p.Text.(string))
	now := s.now()

	fm := models.Frontmatter{
		Type:            noteType,
		Created:         now.Format("2006-01-02"),
		Source:          sourceOrDefault(p.Source),
		TemplateVersion: templateVersion,
		Areas:           []string{},
		Projects:        []string{},
	}

	return &Result{
		NoteContent: notefmt.Render(fm, text),
		Filename:    Filename(now),
	}, nil
}

// Health reports liveness with the current UTC instant in extended
// ISO-8601 with millisecond precision.
func (s *Service) Health() HealthStatus {
	return HealthStatus{
		Status:    "ok",
		Service:   ServiceName,
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

// Filename derives the display filename from the given instant: marker,
// date, then a 12-hour clock with no leading zero on the hour,
// zero-padded minutes, and a lowercase meridiem,
// e.g. "🎤 2026-08-23 3-07pm".
func Filename(t time.Time) string {
	return filenameMarker + " " + t.Format("2006-01-02 3-04pm")
}

// sourceOrDefault returns the request's source when it is a non-empty
// string, otherwise the default capture source.
func sourceOrDefault(v any) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return defaultSource
}
