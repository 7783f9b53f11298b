package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lessonlabs/slidekit/pkg/generator"
	"github.com/lessonlabs/slidekit/pkg/narration"
	"github.com/lessonlabs/slidekit/pkg/session"

	"github.com/go-chi/chi/v5"
)

func parseLessonRequest(r *http.Request) (LessonRequest, error) {
	var req LessonRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}

	req.Topic = strings.TrimSpace(req.Topic)

	if req.Topic == "" {
		return req, errors.New("topic is required")
	}

	if req.Quality == "" {
		req.Quality = generator.QualityMedium
	}

	if !req.Quality.Valid() {
		return req, errors.New("invalid quality")
	}

	if req.Accent == "" {
		req.Accent = narration.AccentAmerican
	}

	if !req.Accent.Valid() {
		return req, errors.New("invalid accent")
	}

	return req, nil
}

func (h *Handler) handleLessonCreate(w http.ResponseWriter, r *http.Request) {
	req, err := parseLessonRequest(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	run := h.sessions.Create()

	if err := run.Submit(req.Topic); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}

	// The run is detached from the request context: navigating away
	// from the loading screen does not cancel generation.
	go h.generate(context.WithoutCancel(r.Context()), run, req)

	w.WriteHeader(http.StatusAccepted)

	writeJson(w, toLessonResponse(run.Status()))
}

// handleLessonResubmit starts a new run on an existing session, for
// example after an error or to regenerate with a different accent.
// The previous bundle is discarded; a run already in flight is
// rejected rather than cancelled or queued.
func (h *Handler) handleLessonResubmit(w http.ResponseWriter, r *http.Request) {
	run, err := h.sessions.Get(chi.URLParam(r, "id"))

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	req, err := parseLessonRequest(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := run.Submit(req.Topic); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}

	go h.generate(context.WithoutCancel(r.Context()), run, req)

	w.WriteHeader(http.StatusAccepted)

	writeJson(w, toLessonResponse(run.Status()))
}

func (h *Handler) generate(ctx context.Context, run *session.Session, req LessonRequest) {
	bundle, err := h.generator.Generate(ctx, generator.Request{
		Topic: req.Topic,

		Quality: req.Quality,
		Accent:  req.Accent,
	})

	if err != nil {
		reason := session.ReasonGeneric

		if errors.Is(err, generator.ErrCredentials) {
			reason = session.ReasonCredentials
		}

		run.Fail(reason)
		return
	}

	run.Succeed(bundle)
}

func (h *Handler) handleLessonGet(w http.ResponseWriter, r *http.Request) {
	run, err := h.sessions.Get(chi.URLParam(r, "id"))

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	writeJson(w, toLessonResponse(run.Status()))
}

func (h *Handler) handleLessonDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.sessions.Get(id)

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	run.Restart()
	h.sessions.Delete(id)

	w.WriteHeader(http.StatusNoContent)
}
