package narration

import (
	"strings"
)

// symbolWords maps characters a synthesizer would misread onto their
// spoken form. Replacements contain none of the mapped characters, so
// applying Sanitize twice yields the same text as applying it once.
var symbolWords = strings.NewReplacer(
	"∑", " the sum of ",
	"Σ", " the sum of ",
	"Δ", " the change in ",
	"δ", " the change in ",
	"≠", " is not equal to ",
	"≈", " is approximately ",
	"±", " plus or minus ",
)

// markup are characters stripped outright: they either get read aloud
// or break the synthesizer.
var markup = strings.NewReplacer(
	"*", "",
	"_", "",
	"#", "",
	"`", "",
	"~", "",
	"\\", "",
	"|", "",
)

// Sanitize prepares narration text for speech synthesis.
func Sanitize(text string) string {
	text = symbolWords.Replace(text)
	text = markup.Replace(text)

	// Collapse runs of whitespace left behind by the substitutions.
	text = strings.Join(strings.Fields(text), " ")

	return text
}
