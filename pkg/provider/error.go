package provider

import (
	"errors"
)

// ErrEntityNotFound maps the backend "Requested entity was not found"
// response. It usually means the API key has no access to the requested
// model (billing or project misconfiguration) and callers surface it
// differently from generic failures.
var ErrEntityNotFound = errors.New("requested entity was not found")
