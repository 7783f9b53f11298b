package deck_test

import (
	"testing"

	"github.com/lessonlabs/slidekit/pkg/deck"

	"github.com/stretchr/testify/require"
)

func validSlide(kind deck.Kind) deck.Slide {
	return deck.Slide{
		Kind: kind,

		Title:   "Some Title",
		Content: "First sentence. Second sentence. Third sentence.",

		NarrationScript:   "A short narration for the slide.",
		NarrationDuration: 20,
	}
}

func TestValidate(t *testing.T) {
	d := &deck.Deck{
		Topic: "photosynthesis",
	}

	for _, kind := range deck.Kinds {
		d.Slides = append(d.Slides, validSlide(kind))
	}

	require.NoError(t, d.Validate())
}

func TestValidateEmpty(t *testing.T) {
	d := &deck.Deck{Topic: "empty"}

	require.ErrorIs(t, d.Validate(), deck.ErrNoSlides)
}

func TestValidateKind(t *testing.T) {
	d := &deck.Deck{
		Slides: []deck.Slide{validSlide("recap")},
	}

	require.ErrorIs(t, d.Validate(), deck.ErrInvalidKind)
}

func TestValidateQuiz(t *testing.T) {
	slide := validSlide(deck.KindScenario)

	slide.Quiz = &deck.Quiz{
		Question: "What happens to demand when prices fall?",
		Options:  []string{"It rises", "It falls", "It stays flat"},

		CorrectIndex: 3,
	}

	d := &deck.Deck{Slides: []deck.Slide{slide}}

	require.Error(t, d.Validate())

	slide.Quiz.CorrectIndex = 0
	d.Slides = []deck.Slide{slide}

	require.NoError(t, d.Validate())
}

func TestWantsImage(t *testing.T) {
	tests := []struct {
		name string

		kind   deck.Kind
		prompt string

		want bool
	}{
		{name: "deep dive with prompt", kind: deck.KindDeepDive, prompt: "diagram of supply curve", want: true},
		{name: "deep dive without prompt", kind: deck.KindDeepDive, prompt: "", want: false},
		{name: "intro with prompt", kind: deck.KindIntro, prompt: "some visual", want: false},
		{name: "vocabulary", kind: deck.KindVocabulary, prompt: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slide := validSlide(tt.kind)
			slide.VisualPrompt = tt.prompt

			require.Equal(t, tt.want, slide.WantsImage())
		})
	}
}

func TestParse(t *testing.T) {
	data := `{
		"topic": "supply and demand",
		"slides": [
			{
				"kind": "intro",
				"title": "Supply and Demand",
				"content": "One. Two. Three.",
				"narrationScript": "Welcome to the lesson.",
				"narrationDurationEstimate": 15
			},
			{
				"kind": "deep-dive",
				"title": "The Supply Curve",
				"content": "One. Two. Three.",
				"narrationScript": "As you can see in the diagram, supply slopes upward.",
				"narrationDurationEstimate": 25,
				"visualPrompt": "diagram of supply curve"
			}
		]
	}`

	d, err := deck.Parse(data)
	require.NoError(t, err)

	require.Equal(t, "supply and demand", d.Topic)
	require.Len(t, d.Slides, 2)
	require.True(t, d.Slides[1].WantsImage())
}

func TestParseFenced(t *testing.T) {
	data := "```json\n{\"topic\": \"t\", \"slides\": [{\"kind\": \"intro\", \"title\": \"T\", \"content\": \"C.\", \"narrationScript\": \"N.\", \"narrationDurationEstimate\": 5}]}\n```"

	d, err := deck.Parse(data)
	require.NoError(t, err)
	require.Len(t, d.Slides, 1)
}

func TestParseMalformed(t *testing.T) {
	_, err := deck.Parse("not json at all")
	require.Error(t, err)

	_, err = deck.Parse(`{"topic": "t", "slides": []}`)
	require.ErrorIs(t, err, deck.ErrNoSlides)
}

func TestSchema(t *testing.T) {
	schema := deck.Schema()

	require.Equal(t, "lesson_deck", schema.Name)
	require.NotEmpty(t, schema.Schema)

	properties := schema.Schema["properties"].(map[string]any)
	slides := properties["slides"].(map[string]any)
	items := slides["items"].(map[string]any)
	kind := items["properties"].(map[string]any)["kind"].(map[string]any)

	enum := kind["enum"].([]any)
	require.Len(t, enum, 5)
	require.Contains(t, enum, "deep-dive")
}
