package google

import (
	"errors"
	"strings"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"google.golang.org/genai"
)

var errNoContent = errors.New("no content in response")

func convertError(err error) error {
	var apierr genai.APIError

	if errors.As(err, &apierr) {
		if apierr.Code == 404 || strings.Contains(apierr.Message, "Requested entity was not found") {
			return provider.ErrEntityNotFound
		}

		return err
	}

	if strings.Contains(err.Error(), "Requested entity was not found") {
		return provider.ErrEntityNotFound
	}

	return err
}
