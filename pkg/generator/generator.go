package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lessonlabs/slidekit/pkg/deck"
	"github.com/lessonlabs/slidekit/pkg/narration"
	"github.com/lessonlabs/slidekit/pkg/provider"
)

type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

var Qualities = []Quality{
	QualityLow,
	QualityMedium,
	QualityHigh,
}

func (q Quality) Valid() bool {
	for _, quality := range Qualities {
		if q == quality {
			return true
		}
	}

	return false
}

// defaultStyle is appended to every slide image prompt so the deck
// keeps one visual language regardless of topic.
const defaultStyle = "Colorful flat educational illustration, soft ambient lighting, warm and friendly palette, no text or labels."

type Request struct {
	Topic string

	Quality Quality
	Accent  narration.Accent
}

type Asset struct {
	Content     []byte
	ContentType string
}

// Bundle is the aggregate of one generation run. The asset maps are
// sparse: a position is present only where generation succeeded.
type Bundle struct {
	Deck *deck.Deck

	Images map[int]Asset
	Audio  map[int]Asset
}

type Generator struct {
	completer   provider.Completer
	synthesizer provider.Synthesizer

	renderers map[Quality]provider.Renderer

	style string
}

type Option func(*Generator)

func WithRenderer(quality Quality, renderer provider.Renderer) Option {
	return func(g *Generator) {
		g.renderers[quality] = renderer
	}
}

func WithStyle(style string) Option {
	return func(g *Generator) {
		g.style = style
	}
}

func New(completer provider.Completer, synthesizer provider.Synthesizer, options ...Option) *Generator {
	g := &Generator{
		completer:   completer,
		synthesizer: synthesizer,

		renderers: map[Quality]provider.Renderer{},

		style: defaultStyle,
	}

	for _, option := range options {
		option(g)
	}

	return g
}

// Generate runs one full generation pass: the deck request first
// (fatal on failure), then all image and audio requests concurrently
// with per-item failure isolation.
func (g *Generator) Generate(ctx context.Context, req Request) (*Bundle, error) {
	d, err := g.generateDeck(ctx, req.Topic)

	if err != nil {
		return nil, err
	}

	bundle := &Bundle{
		Deck: d,

		Images: map[int]Asset{},
		Audio:  map[int]Asset{},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, s := range d.Slides {
		if s.WantsImage() {
			wg.Add(1)

			go func(pos int, prompt string) {
				defer wg.Done()

				asset, err := g.renderSlide(ctx, req.Quality, prompt)

				if err != nil {
					slog.Warn("slide image failed", "position", pos, "error", err)
					return
				}

				mu.Lock()
				bundle.Images[pos] = *asset
				mu.Unlock()
			}(i, s.VisualPrompt)
		}

		if s.WantsNarration() {
			wg.Add(1)

			go func(pos int, script string) {
				defer wg.Done()

				asset, err := g.synthesizeSlide(ctx, req.Accent, script)

				if err != nil {
					slog.Warn("slide narration failed", "position", pos, "error", err)
					return
				}

				mu.Lock()
				bundle.Audio[pos] = *asset
				mu.Unlock()
			}(i, s.NarrationScript)
		}
	}

	wg.Wait()

	return bundle, nil
}

func (g *Generator) generateDeck(ctx context.Context, topic string) (*deck.Deck, error) {
	system, user := deck.Prompt(topic)

	messages := []provider.Message{
		provider.SystemMessage(system),
		provider.UserMessage(user),
	}

	options := &provider.CompleteOptions{
		Schema: deck.Schema(),
	}

	completion, err := g.completer.Complete(ctx, messages, options)

	if err != nil {
		if errors.Is(err, provider.ErrEntityNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrCredentials, err)
		}

		return nil, fmt.Errorf("generate deck: %w", err)
	}

	if completion.Message == nil || completion.Message.Text() == "" {
		return nil, fmt.Errorf("generate deck: %w", ErrNoContent)
	}

	result, err := deck.Parse(completion.Message.Text())

	if err != nil {
		return nil, err
	}

	if result.Topic == "" {
		result.Topic = topic
	}

	return result, nil
}

func (g *Generator) renderSlide(ctx context.Context, quality Quality, prompt string) (*Asset, error) {
	renderer := g.renderer(quality)

	if renderer == nil {
		return nil, ErrNotConfigured
	}

	options := &provider.RenderOptions{
		AspectRatio: "16:9",
	}

	rendering, err := renderer.Render(ctx, prompt+" "+g.style, options)

	if err != nil {
		return nil, err
	}

	if len(rendering.Content) == 0 {
		return nil, ErrNoContent
	}

	return &Asset{
		Content:     rendering.Content,
		ContentType: rendering.ContentType,
	}, nil
}

func (g *Generator) renderer(quality Quality) provider.Renderer {
	if r, ok := g.renderers[quality]; ok {
		return r
	}

	return g.renderers[QualityMedium]
}

func (g *Generator) synthesizeSlide(ctx context.Context, accent narration.Accent, script string) (*Asset, error) {
	if g.synthesizer == nil {
		return nil, ErrNotConfigured
	}

	options := &provider.SynthesizeOptions{
		Voice: accent.Voice(),

		Instructions: accent.Instruction(),
	}

	synthesis, err := g.synthesizer.Synthesize(ctx, narration.Sanitize(script), options)

	if err != nil {
		return nil, err
	}

	if len(synthesis.Content) == 0 {
		return nil, ErrNoContent
	}

	return &Asset{
		Content:     synthesis.Content,
		ContentType: synthesis.ContentType,
	}, nil
}
