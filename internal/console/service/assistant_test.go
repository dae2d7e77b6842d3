package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssistantReply(t *testing.T) {
	t.Parallel()

	a := NewAssistant()

	cases := []struct {
		prompt string
		expect string
	}{
		{"How are my orders doing?", "ORD-1042"},
		{"do I need to RESTOCK anything", "low on stock"},
		{"show me this month's revenue", "18,452"},
		{"any new customer reviews?", "reviews"},
		{"help", "summarise"},
	}
	for _, tc := range cases {
		reply := a.Reply(tc.prompt)
		require.Contains(t, strings.ToLower(reply), strings.ToLower(tc.expect), "prompt %q", tc.prompt)
	}

	t.Run("fallback", func(t *testing.T) {
		reply := a.Reply("what's the weather like")
		require.Contains(t, reply, "Try asking")
		require.Equal(t, reply, a.Reply(""))
	})
}
