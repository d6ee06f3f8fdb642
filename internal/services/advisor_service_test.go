package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kissan/pkg/memcache"
	"kissan/pkg/utils"
)

func newAdvisor(client *fakeAIClient) AdvisorServiceInterface {
	return NewAdvisorService(client, memcache.NewChatHistory(time.Minute))
}

func TestAdvisorChat(t *testing.T) {
	ctx := context.Background()

	t.Run("model reply is returned and recorded", func(t *testing.T) {
		svc := newAdvisor(&fakeAIClient{chatReply: "Sow wheat in the first half of November."})

		reply, err := svc.Chat(ctx, "", "When should I sow wheat?")
		require.NoError(t, err)
		assert.Equal(t, "Sow wheat in the first half of November.", reply.Reply)
		assert.False(t, reply.Fallback)
		require.NotEmpty(t, reply.SessionID)

		history := svc.History(reply.SessionID)
		require.Len(t, history, 2)
		assert.Equal(t, "user", history[0].Sender)
		assert.Equal(t, "bot", history[1].Sender)
	})

	t.Run("session id is reused across turns", func(t *testing.T) {
		svc := newAdvisor(&fakeAIClient{chatReply: "ok"})

		first, err := svc.Chat(ctx, "", "first question")
		require.NoError(t, err)
		second, err := svc.Chat(ctx, first.SessionID, "second question")
		require.NoError(t, err)

		assert.Equal(t, first.SessionID, second.SessionID)
		assert.Len(t, svc.History(first.SessionID), 4)
	})

	t.Run("upstream failure falls back to canned answer", func(t *testing.T) {
		svc := newAdvisor(&fakeAIClient{chatErr: errors.New("quota exceeded")})

		reply, err := svc.Chat(ctx, "", "How much urea fertilizer per acre?")
		require.NoError(t, err)
		assert.True(t, reply.Fallback)
		assert.Contains(t, reply.Reply, "Balanced fertilization")
	})

	t.Run("failure with no canned answer is a typed error", func(t *testing.T) {
		svc := newAdvisor(&fakeAIClient{chatErr: errors.New("quota exceeded")})

		_, err := svc.Chat(ctx, "", "tell me a joke")
		assert.ErrorIs(t, err, utils.ErrUpstream)
	})
}

func TestAdvisorInterpret(t *testing.T) {
	ctx := context.Background()

	t.Run("weather keyword navigates", func(t *testing.T) {
		svc := newAdvisor(&fakeAIClient{})

		outcome := svc.Interpret(ctx, "what's the weather today", "en")
		assert.Equal(t, "navigate", outcome.Action)
		assert.Equal(t, "/weather", outcome.Route)
		assert.Equal(t, "Opening weather information", outcome.Speech)
	})

	t.Run("hindi acknowledgement", func(t *testing.T) {
		svc := newAdvisor(&fakeAIClient{})

		outcome := svc.Interpret(ctx, "mandi bhav batao", "hi")
		assert.Equal(t, "navigate", outcome.Action)
		assert.Equal(t, "/market", outcome.Route)
		assert.Equal(t, "Mandi ke bhav khul rahe hain", outcome.Speech)
	})

	t.Run("first matching group wins", func(t *testing.T) {
		svc := newAdvisor(&fakeAIClient{})

		// "weather" appears before "market" in the table.
		outcome := svc.Interpret(ctx, "weather at the market", "en")
		assert.Equal(t, "/weather", outcome.Route)
	})

	t.Run("unmatched utterance forwarded verbatim to chat", func(t *testing.T) {
		client := &fakeAIClient{chatReply: "You can intercrop lentils with mustard."}
		svc := newAdvisor(client)

		outcome := svc.Interpret(ctx, "can I grow lentils alongside mustard", "en")
		assert.Equal(t, "answer", outcome.Action)
		assert.Equal(t, "You can intercrop lentils with mustard.", outcome.Speech)
		assert.Equal(t, "can I grow lentils alongside mustard", client.lastPrompt)
	})

	t.Run("chat failure speaks a network apology", func(t *testing.T) {
		svc := newAdvisor(&fakeAIClient{chatErr: errors.New("dial tcp: timeout")})

		outcome := svc.Interpret(ctx, "some unmatched question", "en")
		assert.Equal(t, "error", outcome.Action)
		assert.Equal(t, "There is a network issue", outcome.Speech)

		outcome = svc.Interpret(ctx, "some unmatched question", "hi")
		assert.Equal(t, "Net ki samasya hai", outcome.Speech)
	})
}

func TestSmartAnswer(t *testing.T) {
	t.Run("keyword match is case-insensitive", func(t *testing.T) {
		answer := SmartAnswer("What is the WHEAT sowing window?")
		assert.Contains(t, answer, "Nov 1 - Nov 15")
	})

	t.Run("earlier entries take precedence", func(t *testing.T) {
		// "price" sits in the market entry, above the wheat entry.
		answer := SmartAnswer("wheat price today")
		assert.Contains(t, answer, "Market rates update daily")
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, SmartAnswer("recite a poem"))
	})
}
