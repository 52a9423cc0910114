package api

import "github.com/starford/voiceinbox/internal/convert"

// ConvertRequest is the request body for POST /convert.
type ConvertRequest struct {
	Text   string `json:"text" example:"This is a test transcription." validate:"required"`
	Source string `json:"source,omitempty" example:"ios-dictation"`
}

// ConvertResponse is the success body for POST /convert.
type ConvertResponse struct {
	Success     bool   `json:"success" validate:"required"`
	NoteContent string `json:"noteContent" validate:"required"`
	Filename    string `json:"filename" example:"🎤 2026-08-23 3-07pm" validate:"required"`
}

// HealthResponse is the body for GET / (aliased from the domain layer).
type HealthResponse = convert.HealthStatus

// FailureResponse is the body for every non-success outcome. Callers
// branch on Success rather than relying solely on the HTTP status.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error" validate:"required"`
}
