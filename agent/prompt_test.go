package agent

import (
	"strings"
	"testing"
)

func TestMentorPromptEmbedsSnapshot(t *testing.T) {
	snapshot := "| me | isa | ₩50,000 |"
	got := MentorPrompt(snapshot)

	if !strings.Contains(got, snapshot) {
		t.Error("MentorPrompt does not embed the snapshot")
	}
	if !strings.Contains(got, "투자 멘토") {
		t.Error("MentorPrompt lost the mentor persona")
	}
	// The persona comes first, the data after.
	if strings.Index(got, "투자 멘토") > strings.Index(got, snapshot) {
		t.Error("MentorPrompt should state the persona before the snapshot")
	}
}
