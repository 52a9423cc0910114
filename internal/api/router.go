package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/voiceinbox/internal/convert"
)

// NewRouter creates a chi router with the health and convert routes
// mounted behind the permissive CORS middleware. Unknown paths and
// method mismatches both fall through to the JSON 404.
func NewRouter(svc *convert.Service) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(CORSMiddleware)

	r.Get("/", h.Health)
	r.Post("/convert", h.Convert)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}
