package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lessonlabs/slidekit/config"
	"github.com/lessonlabs/slidekit/pkg/generator"
	"github.com/lessonlabs/slidekit/pkg/session"

	"github.com/go-chi/chi/v5"
)

type lessonGenerator interface {
	Generate(ctx context.Context, req generator.Request) (*generator.Bundle, error)
}

type Handler struct {
	*config.Config

	generator lessonGenerator
	sessions  *session.Store
}

func New(cfg *config.Config) (*Handler, error) {
	g, err := cfg.Generator()

	if err != nil {
		return nil, err
	}

	h := &Handler{
		Config: cfg,

		generator: g,
		sessions:  session.NewStore(),
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/lessons", h.handleLessonCreate)
	r.Post("/lessons/{id}", h.handleLessonResubmit)
	r.Get("/lessons/{id}", h.handleLessonGet)
	r.Delete("/lessons/{id}", h.handleLessonDelete)

	r.Get("/lessons/{id}/slides/{index}/image", h.handleSlideImage)
	r.Get("/lessons/{id}/slides/{index}/audio", h.handleSlideAudio)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}
