// Package intent routes an utterance either to the vision pipeline or to one
// of the conversational reply categories. The rules are ordered keyword
// checks, first match wins; reordering them changes behavior and is a policy
// change, not a refactor.
package intent

import "strings"

type Category string

const (
	NeedsVision         Category = "needs_vision"
	AssistantInfo       Category = "assistant_info"
	UsageHelp           Category = "usage_help"
	Gratitude           Category = "gratitude"
	Greeting            Category = "greeting"
	GeneralConversation Category = "general"
)

// Intent is the classified purpose of an utterance. Hint is only set for
// NeedsVision and tells the vision model where to focus.
type Intent struct {
	Category Category
	Hint     string
}

const (
	HintHeldObjects = "focus on held objects"
	HintVisibleText = "focus on visible text"
	HintColor       = "focus on color/appearance"
	HintSpatial     = "focus on spatial relationships"
)

var visionPhrases = []string{
	// Scene description
	"what is in front of me",
	"what do you see",
	"what is this",
	"describe this",
	"what can you see",
	"identify this",
	"what is around",
	"what is there",
	"tell me what you see",
	"describe the scene",
	"what is happening",
	"what is going on",

	// Object identification
	"what am i holding",
	"what is in my hand",
	"identify this object",
	"what object is this",
	"tell me about this object",
	"what is this thing",
	"what is this item",

	// Reading text
	"what does this say",
	"read this",
	"can you read this",
	"what is written",
	"what text do you see",

	// Spatial safety
	"is there anything in front of me",
	"is there a wall",
	"am i about to hit something",
	"is the path clear",
	"is it safe to walk",

	// Color and appearance
	"what color is this",
	"describe the color",
	"how does this look",
}

var visionVerbs = []string{"see", "look", "watch", "observe", "check", "scan", "view", "read", "identify", "describe"}

var objectWords = []string{"thing", "object", "item", "device", "product", "box", "container", "bottle", "package"}

var positionalWords = []string{"holding", "hand", "front", "ahead", "near", "next to", "beside", "behind"}

// Classify maps raw utterance text to an Intent. It is pure and total: the
// same text always yields the same result and every text yields exactly one
// category.
func Classify(text string) Intent {
	s := strings.ToLower(strings.TrimSpace(text))

	needsVision := containsAny(s, visionPhrases) ||
		containsAny(s, visionVerbs) ||
		(containsAny(s, positionalWords) &&
			(strings.Contains(s, "what") || strings.Contains(s, "how") || strings.Contains(s, "where"))) ||
		(strings.Contains(s, "what is this") && containsAny(s, objectWords)) ||
		strings.Contains(s, "can you see") ||
		strings.Contains(s, "how does it look") ||
		strings.Contains(s, "help me see") ||
		strings.Contains(s, "tell me what you see")

	if needsVision {
		return Intent{Category: NeedsVision, Hint: visionHint(s)}
	}

	switch {
	case strings.Contains(s, "who are you") || strings.Contains(s, "what can you do"):
		return Intent{Category: AssistantInfo}
	case strings.Contains(s, "help") || strings.Contains(s, "how to use"):
		return Intent{Category: UsageHelp}
	case strings.Contains(s, "thank"):
		return Intent{Category: Gratitude}
	case strings.Contains(s, "hello") || strings.Contains(s, "hi ") || s == "hi":
		return Intent{Category: Greeting}
	}
	return Intent{Category: GeneralConversation}
}

// visionHint picks the contextual hint by priority: held objects beat text,
// text beats color, color beats spatial.
func visionHint(s string) string {
	switch {
	case strings.Contains(s, "holding") || strings.Contains(s, "hand"):
		return HintHeldObjects
	case strings.Contains(s, "read") || strings.Contains(s, "say") || strings.Contains(s, "text"):
		return HintVisibleText
	case strings.Contains(s, "color"):
		return HintColor
	case containsAny(s, positionalWords):
		return HintSpatial
	}
	return ""
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
