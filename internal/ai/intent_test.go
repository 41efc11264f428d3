package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntents(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantTop string
	}{
		{"route query", "how to reach Andheri from Churchgate by train", "route"},
		{"food query", "best street food near Dadar, I am hungry", "food"},
		{"budget query", "cheap places to visit on a tight budget", "budget"},
		{"safety query", "is it safe for a solo woman to travel at night", "safety"},
		{"sightseeing query", "famous monuments and museums to explore", "sightseeing"},
		{"quick trip query", "I have a layover of 3 hours, quick visit ideas", "quick_trip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intents := ClassifyIntents(tt.message)
			require.NotEmpty(t, intents)
			assert.Equal(t, tt.wantTop, intents[0].Type)
		})
	}
}

func TestClassifyIntentsNoMatch(t *testing.T) {
	assert.Empty(t, ClassifyIntents("xyzzy plugh"))
	assert.Empty(t, ClassifyIntents(""))
	assert.Empty(t, ClassifyIntents("   "))
}

func TestClassifyIntentsMultiWordWeight(t *testing.T) {
	// A single multi-word keyword scores like three single words.
	intents := ClassifyIntents("things to do this weekend")
	require.NotEmpty(t, intents)
	assert.Equal(t, "sightseeing", intents[0].Type)
	assert.GreaterOrEqual(t, intents[0].Confidence, 0.6)
}

func TestClassifyIntentsConfidenceCapped(t *testing.T) {
	msg := "route train metro bus cab auto taxi station airport directions commute"
	intents := ClassifyIntents(msg)
	require.NotEmpty(t, intents)
	assert.Equal(t, 1.0, intents[0].Confidence)
}

func TestClassifyIntentsWordBoundary(t *testing.T) {
	// "safety" keywords must not fire on substrings like "unsafe" containing
	// no whole-word match.
	intents := ClassifyIntents("visafe")
	assert.Empty(t, intents)
}

func TestPrimaryIntent(t *testing.T) {
	intent := PrimaryIntent("how to reach the airport, fastest way please")
	require.NotNil(t, intent)
	assert.Equal(t, "route", intent.Type)

	assert.Nil(t, PrimaryIntent("tell me a story about dragons"), "no travel keywords means no intent")
}

func TestBuildIntentPrompt(t *testing.T) {
	prompt := BuildIntentPrompt("safe and cheap way to reach the station at night")
	require.NotEmpty(t, prompt)
	assert.True(t, strings.HasPrefix(prompt, "\n\n[USER INTENT: "))
	assert.Contains(t, prompt, " + ", "two strong intents are combined")

	assert.Empty(t, BuildIntentPrompt("hello there"))
}
