package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/starford/voiceinbox/internal/convert"
)

// Handler holds API route handlers.
type Handler struct {
	svc *convert.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *convert.Service) *Handler {
	return &Handler{svc: svc}
}

// Health handles GET /.
//
//	@Summary		Service liveness check
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/ [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Health())
}

// Convert handles POST /convert. Any failure, including an unexpected
// panic in the formatting path, becomes a structured 400 so a single bad
// request can never take the process down.
//
//	@Summary		Convert transcribed text into a structured note
//	@Tags			convert
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ConvertRequest	true	"Transcription to convert"
//	@Success		200		{object}	ConvertResponse
//	@Failure		400		{object}	FailureResponse
//	@Router			/convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("convert panic", slog.Any("panic", rec))
			writeJSON(w, http.StatusBadRequest, failureBody("internal error"))
		}
	}()

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failureBody("failed to read body"))
		return
	}

	res, err := h.svc.Convert(r.Context(), body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failureBody(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		Success:     true,
		NoteContent: res.NoteContent,
		Filename:    res.Filename,
	})
}

// NotFound is the fallback for unknown routes and method mismatches.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, failureBody("Not found"))
}
