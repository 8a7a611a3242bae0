// Package vision defines the vision-language analysis contract: a captured
// frame plus the user's query in, a free-text scene description out.
package vision

import (
	"errors"
	"fmt"
)

// Timeout for a single analysis call; a timeout is handled like any other
// transport failure.
const TimeoutSeconds = 15

// ErrEmptyResult means the service responded but produced no description. An
// empty description is never a legitimate answer.
var ErrEmptyResult = errors.New("empty vision result")

type AnalysisOptions struct {
	// Hint narrows where the model should focus (held objects, visible
	// text, colors, spatial relations). Empty means no narrowing.
	Hint string
}

type AnalysisOption func(*AnalysisOptions)

func WithHint(hint string) AnalysisOption {
	return func(o *AnalysisOptions) {
		o.Hint = hint
	}
}

// BuildPrompt elaborates the literal user query into instructions for the
// vision model: factual reporting of objects, text, spatial relations,
// colors and shapes.
func BuildPrompt(query, hint string) string {
	contextualized := query
	if hint != "" {
		contextualized = fmt.Sprintf("%s (%s)", query, hint)
	}
	return fmt.Sprintf(`Analyze this image and describe what you see in detail.
The user asked: %q
Focus on main objects, people, text, and spatial relationships.
Be factual and precise. Describe colors, shapes, and positions accurately.`, contextualized)
}
