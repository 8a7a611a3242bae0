package intent

import "testing"

func TestVisionVerbsAlwaysRouteToVision(t *testing.T) {
	for _, text := range []string{
		"can you scan this",
		"please look around",
		"check my surroundings",
		"OBSERVE the room",
		"view the street",
	} {
		got := Classify(text)
		if got.Category != NeedsVision {
			t.Fatalf("expected %q to need vision, got %s", text, got.Category)
		}
	}
}

func TestVisionPhrasesRouteToVision(t *testing.T) {
	for _, text := range []string{
		"what is in front of me",
		"what am I holding",
		"is the path clear",
		"what color is this",
		"help me see",
	} {
		got := Classify(text)
		if got.Category != NeedsVision {
			t.Fatalf("expected %q to need vision, got %s", text, got.Category)
		}
	}
}

func TestPositionalWordsNeedQuestionWord(t *testing.T) {
	if got := Classify("what is ahead of me"); got.Category != NeedsVision {
		t.Fatalf("expected positional+question to need vision, got %s", got.Category)
	}
	// "behind" alone, no question word, no verb: conversational.
	if got := Classify("it fell behind"); got.Category != GeneralConversation {
		t.Fatalf("expected positional without question word to stay conversational, got %s", got.Category)
	}
}

func TestHintPriorityOrder(t *testing.T) {
	cases := []struct {
		text string
		hint string
	}{
		{"what am i holding", HintHeldObjects},
		{"what is in my hand", HintHeldObjects},
		{"read this label for me", HintVisibleText},
		{"what color is this shirt", HintColor},
		{"what is ahead of me", HintSpatial},
		{"what do you see", ""},
		// holding beats read when both appear
		{"read what i am holding", HintHeldObjects},
	}
	for _, tc := range cases {
		got := Classify(tc.text)
		if got.Category != NeedsVision {
			t.Fatalf("expected %q to need vision, got %s", tc.text, got.Category)
		}
		if got.Hint != tc.hint {
			t.Fatalf("expected hint %q for %q, got %q", tc.hint, tc.text, got.Hint)
		}
	}
}

func TestConversationalCategories(t *testing.T) {
	cases := []struct {
		text     string
		category Category
	}{
		{"who are you", AssistantInfo},
		{"what can you do", AssistantInfo},
		{"how to use this app", UsageHelp},
		{"thanks a lot", Gratitude},
		{"thank you so much", Gratitude},
		{"hello there", Greeting},
		{"hi", Greeting},
		{"what's the weather like", GeneralConversation},
	}
	for _, tc := range cases {
		got := Classify(tc.text)
		if got.Category != tc.category {
			t.Fatalf("expected %q to classify as %s, got %s", tc.text, tc.category, got.Category)
		}
		if got.Hint != "" {
			t.Fatalf("expected no hint for conversational %q, got %q", tc.text, got.Hint)
		}
	}
}

func TestVisionRulesBeatConversationalKeywords(t *testing.T) {
	// "see" is a vision verb, so gratitude never gets a chance.
	got := Classify("thanks, now tell me what you see")
	if got.Category != NeedsVision {
		t.Fatalf("expected vision rules to take precedence over gratitude, got %s", got.Category)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	for _, text := range []string{"what am i holding", "thanks", "hello", "anything else"} {
		first := Classify(text)
		second := Classify(text)
		if first != second {
			t.Fatalf("expected stable classification for %q, got %+v then %+v", text, first, second)
		}
	}
}

func TestClassificationIsTotal(t *testing.T) {
	for _, text := range []string{"", "   ", "zzz", "42"} {
		got := Classify(text)
		if got.Category == "" {
			t.Fatalf("expected a category for %q, got none", text)
		}
	}
}
