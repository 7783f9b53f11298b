package api

import (
	"github.com/lessonlabs/slidekit/pkg/deck"
	"github.com/lessonlabs/slidekit/pkg/generator"
	"github.com/lessonlabs/slidekit/pkg/narration"
	"github.com/lessonlabs/slidekit/pkg/provider"
	"github.com/lessonlabs/slidekit/pkg/session"
	"github.com/lessonlabs/slidekit/pkg/wav"
)

type LessonRequest struct {
	Topic string `json:"topic"`

	Quality generator.Quality `json:"quality,omitempty"`
	Accent  narration.Accent  `json:"accent,omitempty"`
}

type LessonResponse struct {
	ID    string `json:"id"`
	Topic string `json:"topic,omitempty"`

	State  session.State  `json:"state"`
	Reason session.Reason `json:"reason,omitempty"`

	Deck []SlideResponse `json:"deck,omitempty"`
}

type SlideResponse struct {
	deck.Slide

	// Asset links, present only where generation succeeded.
	ImageURL string `json:"imageUrl,omitempty"`
	AudioURL string `json:"audioUrl,omitempty"`

	// AudioDuration is derived from the decoded samples, not from the
	// model's estimate.
	AudioDuration float64 `json:"audioDuration,omitempty"`
}

func toLessonResponse(status session.Status) LessonResponse {
	result := LessonResponse{
		ID:    status.ID,
		Topic: status.Topic,

		State:  status.State,
		Reason: status.Reason,
	}

	if status.Bundle != nil {
		result.Deck = toSlides(status.ID, status.Bundle)
	}

	return result
}

func toSlides(id string, bundle *generator.Bundle) []SlideResponse {
	var result []SlideResponse

	for i, s := range bundle.Deck.Slides {
		slide := SlideResponse{
			Slide: s,
		}

		if _, ok := bundle.Images[i]; ok {
			slide.ImageURL = slideAssetPath(id, i, "image")
		}

		if audio, ok := bundle.Audio[i]; ok {
			slide.AudioURL = slideAssetPath(id, i, "audio")

			// Duration is only derivable from raw samples; an asset
			// that arrived in a container keeps its own timing.
			if audio.ContentType == provider.ContentTypePCM {
				slide.AudioDuration = wav.Duration(audio.Content).Seconds()
			}
		}

		result = append(result, slide)
	}

	return result
}
