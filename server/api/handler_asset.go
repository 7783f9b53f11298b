package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lessonlabs/slidekit/pkg/provider"
	"github.com/lessonlabs/slidekit/pkg/session"
	"github.com/lessonlabs/slidekit/pkg/wav"

	"github.com/go-chi/chi/v5"
)

func slideAssetPath(id string, index int, kind string) string {
	return fmt.Sprintf("/v1/lessons/%s/slides/%d/%s", id, index, kind)
}

func (h *Handler) slideAsset(r *http.Request) (session.Status, int, error) {
	run, err := h.sessions.Get(chi.URLParam(r, "id"))

	if err != nil {
		return session.Status{}, 0, err
	}

	status := run.Status()

	if status.Bundle == nil {
		return session.Status{}, 0, errors.New("lesson not ready")
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))

	if err != nil {
		return session.Status{}, 0, errors.New("invalid slide index")
	}

	if index < 0 || index >= len(status.Bundle.Deck.Slides) {
		return session.Status{}, 0, errors.New("slide index out of range")
	}

	return status, index, nil
}

func (h *Handler) handleSlideImage(w http.ResponseWriter, r *http.Request) {
	status, index, err := h.slideAsset(r)

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	asset, ok := status.Bundle.Images[index]

	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no image for slide"))
		return
	}

	contentType := asset.ContentType

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(asset.Content)
}

func (h *Handler) handleSlideAudio(w http.ResponseWriter, r *http.Request) {
	status, index, err := h.slideAsset(r)

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	asset, ok := status.Bundle.Audio[index]

	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no narration for slide"))
		return
	}

	content := asset.Content

	// Raw samples get a container on the way out; anything already
	// containerized passes through untouched.
	if asset.ContentType == provider.ContentTypePCM {
		content = wav.Encode(content)
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Write(content)
}
