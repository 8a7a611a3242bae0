package orchestration

import (
	"fmt"
	"testing"
)

func TestHistoryIsSnapshot(t *testing.T) {
	var log conversationLog
	log.append(RoleUser, "what is this")
	log.append(RoleAssistant, "a coffee mug")

	history := log.History()
	if len(history) != 2 {
		t.Fatalf("expected two messages, got %d", len(history))
	}

	log.append(RoleUser, "thanks")
	if len(history) != 2 {
		t.Fatalf("expected snapshot to be unaffected by later appends, got %d", len(history))
	}
	if log.Len() != 3 {
		t.Fatalf("expected three messages in log, got %d", log.Len())
	}
}

func TestAppendAssignsIDsAndTimestamps(t *testing.T) {
	var log conversationLog
	first := log.append(RoleUser, "hello")
	second := log.append(RoleAssistant, "hi")

	if first.ID == "" || second.ID == "" {
		t.Fatalf("expected messages to carry IDs")
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct message IDs, both were %q", first.ID)
	}
	if first.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestErrorApologyKeywords(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{fmt.Errorf("image processing failed with status 502"), imageErrorMessage},
		{fmt.Errorf("vision service network failure"), networkErrorMessage},
		{fmt.Errorf("vision analysis timeout"), timeoutErrorMessage},
		{fmt.Errorf("unexpected failure"), genericErrorMessage},
		{nil, genericErrorMessage},
	}

	for _, testCase := range testCases {
		if got := errorApology(testCase.err); got != testCase.expected {
			t.Fatalf("expected %q for %v, got %q", testCase.expected, testCase.err, got)
		}
	}
}
