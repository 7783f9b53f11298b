package openai

import (
	"errors"
	"strings"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		if apierr.StatusCode == 404 || strings.Contains(apierr.Message, "Requested entity was not found") {
			return provider.ErrEntityNotFound
		}
	}

	return err
}
