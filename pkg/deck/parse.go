package deck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse decodes a completion payload into a Deck. There is no partial
// deck: any decode or validation failure is returned as-is and aborts
// the run.
func Parse(data string) (*Deck, error) {
	data = strings.TrimSpace(data)

	// Some backends wrap JSON output in a code fence despite the
	// response MIME type.
	data = strings.TrimPrefix(data, "```json")
	data = strings.TrimPrefix(data, "```")
	data = strings.TrimSuffix(data, "```")

	var result Deck

	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	return &result, nil
}
