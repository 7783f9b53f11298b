package openai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lessonlabs/slidekit/pkg/provider"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/require"
)

func TestConvertError(t *testing.T) {
	tests := []struct {
		name string

		err error

		want error
	}{
		{
			name: "api error 404",
			err:  &openai.Error{StatusCode: 404, Message: "model not found"},
			want: provider.ErrEntityNotFound,
		},
		{
			name: "api error entity message",
			err:  &openai.Error{StatusCode: 403, Message: "Requested entity was not found."},
			want: provider.ErrEntityNotFound,
		},
		{
			name: "wrapped api error",
			err:  fmt.Errorf("complete: %w", &openai.Error{StatusCode: 404}),
			want: provider.ErrEntityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, convertError(tt.err), tt.want)
		})
	}
}

func TestConvertErrorPassthrough(t *testing.T) {
	err := errors.New("deadline exceeded")
	require.Same(t, err, convertError(err))

	apierr := &openai.Error{StatusCode: 429, Message: "rate limited"}
	require.NotErrorIs(t, convertError(apierr), provider.ErrEntityNotFound)
}
