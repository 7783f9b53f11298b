package deck

import (
	"errors"
	"fmt"
)

// SlideCount is the number of slides a generation run is asked to
// produce. The contract lives in the prompt and the response schema;
// Validate tolerates a miscounting model rather than discarding an
// otherwise usable deck.
const SlideCount = 15

type Kind string

const (
	KindIntro      Kind = "intro"
	KindDeepDive   Kind = "deep-dive"
	KindVocabulary Kind = "vocabulary"
	KindScenario   Kind = "scenario"
	KindConclusion Kind = "conclusion"
)

var Kinds = []Kind{
	KindIntro,
	KindDeepDive,
	KindVocabulary,
	KindScenario,
	KindConclusion,
}

func (k Kind) Valid() bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}

	return false
}

type Term struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type Quiz struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`

	CorrectIndex int `json:"correctIndex"`
}

type Slide struct {
	Kind Kind `json:"kind"`

	Title   string `json:"title"`
	Content string `json:"content"`

	NarrationScript string `json:"narrationScript"`

	// NarrationDuration is the model's estimate in seconds. Advisory
	// only - playback timing comes from the decoded audio.
	NarrationDuration float64 `json:"narrationDurationEstimate"`

	VisualPrompt string `json:"visualPrompt,omitempty"`

	Vocabulary []Term `json:"vocabulary,omitempty"`

	Quiz *Quiz `json:"quiz,omitempty"`
}

// WantsImage reports whether the slide is eligible for image
// generation: deep-dive slides with a visual prompt, nothing else.
func (s Slide) WantsImage() bool {
	return s.Kind == KindDeepDive && s.VisualPrompt != ""
}

func (s Slide) WantsNarration() bool {
	return s.NarrationScript != ""
}

type Deck struct {
	Topic string `json:"topic"`

	Slides []Slide `json:"slides"`
}

var (
	ErrNoSlides    = errors.New("deck contains no slides")
	ErrInvalidKind = errors.New("invalid slide kind")
)

func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return ErrNoSlides
	}

	for i, s := range d.Slides {
		if !s.Kind.Valid() {
			return fmt.Errorf("slide %d: %w: %q", i, ErrInvalidKind, s.Kind)
		}

		if s.Title == "" {
			return fmt.Errorf("slide %d: missing title", i)
		}

		if s.Content == "" {
			return fmt.Errorf("slide %d: missing content", i)
		}

		if s.Quiz != nil {
			if len(s.Quiz.Options) == 0 {
				return fmt.Errorf("slide %d: quiz has no options", i)
			}

			if s.Quiz.CorrectIndex < 0 || s.Quiz.CorrectIndex >= len(s.Quiz.Options) {
				return fmt.Errorf("slide %d: quiz correct index out of range", i)
			}
		}
	}

	return nil
}
