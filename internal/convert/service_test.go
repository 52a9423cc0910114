package convert

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/starford/voiceinbox/internal/apperr"
	"github.com/starford/voiceinbox/internal/notefmt"
	"github.com/starford/voiceinbox/internal/testutil"
)

var fixedInstant = time.Date(2026, 8, 23, 15, 7, 0, 0, time.UTC)

func fixedService() *Service {
	return NewService(testutil.FixedClock(fixedInstant))
}

func TestConvert_ExactNoteContent(t *testing.T) {
	svc := fixedService()

	res, err := svc.Convert(context.Background(), []byte(`{"text":"This is a test transcription."}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `---
type: transcription
created: 2026-08-23
source: superwhisper
template_version: 1
areas: []
projects: []
summary: ""
---

This is a test transcription.
`
	if res.NoteContent != want {
		t.Errorf("noteContent = %q, want %q", res.NoteContent, want)
	}
	if res.Filename != "🎤 2026-08-23 3-07pm" {
		t.Errorf("filename = %q", res.Filename)
	}
}

func TestConvert_DefaultSource(t *testing.T) {
	svc := fixedService()

	res, err := svc.Convert(context.Background(), []byte(`{"text":"hello"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.NoteContent, "source: superwhisper") {
		t.Errorf("noteContent missing default source: %q", res.NoteContent)
	}
}

func TestConvert_CustomSource(t *testing.T) {
	svc := fixedService()

	res, err := svc.Convert(context.Background(), []byte(`{"text":"hello","source":"ios-dictation"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.NoteContent, "source: ios-dictation") {
		t.Errorf("noteContent missing custom source: %q", res.NoteContent)
	}
}

func TestConvert_EmptyStringSourceFallsBack(t *testing.T) {
	svc := fixedService()

	res, err := svc.Convert(context.Background(), []byte(`{"text":"hello","source":""}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.NoteContent, "source: superwhisper") {
		t.Errorf("empty source should fall back to default: %q", res.NoteContent)
	}
}

func TestConvert_NonStringSourceFallsBack(t *testing.T) {
	svc := fixedService()

	res, err := svc.Convert(context.Background(), []byte(`{"text":"hello","source":42}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.NoteContent, "source: superwhisper") {
		t.Errorf("non-string source should fall back to default: %q", res.NoteContent)
	}
}

func TestConvert_TrimsText(t *testing.T) {
	svc := fixedService()

	res, err := svc.Convert(context.Background(), []byte(`{"text":"  hi there  "}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(res.NoteContent, "---\n\nhi there\n") {
		t.Errorf("body should be the trimmed text: %q", res.NoteContent)
	}
	if strings.Contains(res.NoteContent, "  hi there  ") {
		t.Errorf("surrounding whitespace should not survive: %q", res.NoteContent)
	}
}

func TestConvert_InvalidText(t *testing.T) {
	svc := fixedService()

	cases := []struct {
		name string
		body string
	}{
		{"missing", `{}`},
		{"null", `{"text":null}`},
		{"number", `{"text":5}`},
		{"object", `{"text":{}}`},
		{"bool", `{"text":true}`},
		{"array body", `[1,2,3]`},
		{"string body", `"hello"`},
		{"null body", `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Convert(context.Background(), []byte(tc.body))
			if !errors.Is(err, apperr.ErrInvalidText) {
				t.Fatalf("err = %v, want ErrInvalidText", err)
			}
			if !strings.Contains(err.Error(), "text") {
				t.Errorf("error %q should mention text", err.Error())
			}
		})
	}
}

func TestConvert_EmptyText(t *testing.T) {
	svc := fixedService()

	for _, body := range []string{
		`{"text":""}`,
		`{"text":"   "}`,
		`{"text":"\t\n"}`,
	} {
		_, err := svc.Convert(context.Background(), []byte(body))
		if !errors.Is(err, apperr.ErrEmptyText) {
			t.Fatalf("body %q: err = %v, want ErrEmptyText", body, err)
		}
		if !strings.Contains(err.Error(), "empty") {
			t.Errorf("error %q should mention empty", err.Error())
		}
	}
}

func TestConvert_MalformedBody(t *testing.T) {
	svc := fixedService()

	for _, body := range []string{"not json", `{"text":`, ""} {
		_, err := svc.Convert(context.Background(), []byte(body))
		if !errors.Is(err, apperr.ErrMalformedBody) {
			t.Fatalf("body %q: err = %v, want ErrMalformedBody", body, err)
		}
	}
}

func TestConvert_ValidationOrder(t *testing.T) {
	svc := fixedService()

	// A wrong-typed text reports the field error, never the empty error.
	_, err := svc.Convert(context.Background(), []byte(`{"text":5}`))
	if !errors.Is(err, apperr.ErrInvalidText) {
		t.Fatalf("type check should win over blank check, got %v", err)
	}
}

func TestConvert_RoundTripsThroughParser(t *testing.T) {
	svc := fixedService()

	res, err := svc.Convert(context.Background(), []byte(`{"text":"hello","source":"ios-dictation"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	note, err := notefmt.Parse([]byte(res.NoteContent))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if note.Frontmatter == nil {
		t.Fatal("expected frontmatter")
	}
	if note.Frontmatter.Type != "transcription" {
		t.Errorf("type = %q", note.Frontmatter.Type)
	}
	if note.Frontmatter.Created != "2026-08-23" {
		t.Errorf("created = %q", note.Frontmatter.Created)
	}
	if note.Frontmatter.Source != "ios-dictation" {
		t.Errorf("source = %q", note.Frontmatter.Source)
	}
	if note.Frontmatter.TemplateVersion != 1 {
		t.Errorf("template_version = %d", note.Frontmatter.TemplateVersion)
	}
	if note.Body != "hello\n" {
		t.Errorf("body = %q", note.Body)
	}
}

var filenameRe = regexp.MustCompile(`^🎤 \d{4}-\d{2}-\d{2} (1[0-2]|[1-9])-[0-5]\d(am|pm)$`)

func TestFilename_Format(t *testing.T) {
	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2026, 8, 23, 0, 5, 0, 0, time.UTC), "🎤 2026-08-23 12-05am"},
		{time.Date(2026, 8, 23, 9, 30, 0, 0, time.UTC), "🎤 2026-08-23 9-30am"},
		{time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC), "🎤 2026-08-23 12-00pm"},
		{time.Date(2026, 8, 23, 15, 7, 0, 0, time.UTC), "🎤 2026-08-23 3-07pm"},
		{time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC), "🎤 2026-12-31 11-59pm"},
	}
	for _, tc := range cases {
		got := Filename(tc.at)
		if got != tc.want {
			t.Errorf("Filename(%v) = %q, want %q", tc.at, got, tc.want)
		}
		if !filenameRe.MatchString(got) {
			t.Errorf("Filename(%v) = %q does not match the format law", tc.at, got)
		}
	}
}

func TestHealth_Fields(t *testing.T) {
	svc := fixedService()

	hs := svc.Health()
	if hs.Status != "ok" {
		t.Errorf("status = %q", hs.Status)
	}
	if hs.Service != ServiceName {
		t.Errorf("service = %q, want %q", hs.Service, ServiceName)
	}
	if hs.Timestamp != "2026-08-23T15:07:00.000Z" {
		t.Errorf("timestamp = %q", hs.Timestamp)
	}
}

func TestHealth_TimestampIsUTC(t *testing.T) {
	// A clock in a non-UTC zone still reports the instant in UTC.
	zone := time.FixedZone("CEST", 2*60*60)
	svc := NewService(testutil.FixedClock(time.Date(2026, 8, 23, 17, 7, 0, 0, zone)))

	hs := svc.Health()
	if hs.Timestamp != "2026-08-23T15:07:00.000Z" {
		t.Errorf("timestamp = %q, want UTC instant", hs.Timestamp)
	}
}

func TestHealth_MonotonicTimestamps(t *testing.T) {
	svc := NewService(nil)

	prev := svc.Health().Timestamp
	for i := 0; i < 5; i++ {
		cur := svc.Health().Timestamp
		// ISO-8601 with fixed width compares lexicographically.
		if cur < prev {
			t.Fatalf("timestamp went backwards: %q then %q", prev, cur)
		}
		prev = cur
	}
}
