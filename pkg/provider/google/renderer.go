package google

import (
	"context"
	"strings"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Renderer = (*Renderer)(nil)

type Renderer struct {
	*Config
}

func NewRenderer(model string, options ...Option) (*Renderer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Renderer{
		Config: cfg,
	}, nil
}

func (r *Renderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	if options == nil {
		options = new(provider.RenderOptions)
	}

	client, err := r.newClient(ctx)

	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(r.model, "imagen") {
		return r.renderImagen(ctx, client, input, options)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(input)}, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, r.model, contents, nil)

	if err != nil {
		return nil, convertError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errNoContent
	}

	result := &provider.Rendering{
		ID:    uuid.NewString(),
		Model: r.model,
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil {
			continue
		}

		result.Content = part.InlineData.Data
		result.ContentType = part.InlineData.MIMEType
	}

	if len(result.Content) == 0 {
		return nil, errNoContent
	}

	return result, nil
}

func (r *Renderer) renderImagen(ctx context.Context, client *genai.Client, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	}

	if options.AspectRatio != "" {
		config.AspectRatio = options.AspectRatio
	}

	resp, err := client.Models.GenerateImages(ctx, r.model, input, config)

	if err != nil {
		return nil, convertError(err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, errNoContent
	}

	image := resp.GeneratedImages[0].Image

	contentType := image.MIMEType

	if contentType == "" {
		contentType = "image/png"
	}

	return &provider.Rendering{
		ID:    uuid.NewString(),
		Model: r.model,

		Content:     image.ImageBytes,
		ContentType: contentType,
	}, nil
}
