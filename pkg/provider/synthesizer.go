package provider

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Voice string

	Instructions string

	Format string
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}

// ContentTypePCM is raw 16-bit linear PCM, mono, 24 kHz - the format
// speech backends return before any container is applied.
const ContentTypePCM = "audio/L16;rate=24000"
