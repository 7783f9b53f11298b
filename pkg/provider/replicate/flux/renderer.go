package flux

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/lessonlabs/slidekit/pkg/provider"
	"github.com/lessonlabs/slidekit/pkg/provider/replicate"

	"github.com/google/uuid"
)

var _ provider.Renderer = (*Renderer)(nil)

type Renderer struct {
	*replicate.Client

	model string
}

const (
	FluxSchnell string = "black-forest-labs/flux-schnell"
	FluxDev     string = "black-forest-labs/flux-dev"
	FluxPro     string = "black-forest-labs/flux-1.1-pro"
)

var SupportedModels = []string{
	FluxSchnell,
	FluxDev,
	FluxPro,
}

func NewRenderer(model string, options ...replicate.Option) (*Renderer, error) {
	if !slices.Contains(SupportedModels, model) {
		return nil, errors.New("unsupported model")
	}

	client, err := replicate.New(model, options...)

	if err != nil {
		return nil, err
	}

	return &Renderer{
		Client: client,

		model: model,
	}, nil
}

func (r *Renderer) Render(ctx context.Context, prompt string, options *provider.RenderOptions) (*provider.Rendering, error) {
	if options == nil {
		options = new(provider.RenderOptions)
	}

	aspect := options.AspectRatio

	if aspect == "" {
		aspect = "16:9"
	}

	input := map[string]any{
		"prompt": prompt,

		"aspect_ratio":  aspect,
		"output_format": "png",
	}

	resp, err := r.Run(ctx, input)

	if err != nil {
		return nil, err
	}

	return r.convertImage(resp)
}

func (r *Renderer) convertImage(output replicate.PredictionOutput) (*provider.Rendering, error) {
	file, ok := output.(*replicate.FileOutput)

	if !ok {
		return nil, errors.New("unsupported output")
	}

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	return &provider.Rendering{
		ID:    uuid.NewString(),
		Model: r.model,

		Content:     data,
		ContentType: "image/png",
	}, nil
}
