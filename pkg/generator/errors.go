package generator

import (
	"errors"
)

var (
	// ErrCredentials marks the backend "requested entity was not
	// found" condition on the deck call. It means the configured key
	// cannot reach the model (billing or project setup) and callers
	// show a remediation message instead of a generic retry prompt.
	ErrCredentials = errors.New("backend rejected the configured credentials")

	ErrNoContent = errors.New("backend returned no content")

	ErrNotConfigured = errors.New("capability not configured")
)
