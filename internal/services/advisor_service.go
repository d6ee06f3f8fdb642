package services

import (
	"context"
	"log"
	"strings"

	"kissan/internal/models/response_models"
	"kissan/pkg/ai"
	"kissan/pkg/memcache"
	"kissan/pkg/utils"
)

type AdvisorServiceInterface interface {
	// Chat forwards one question to the assistant model. On upstream
	// failure it falls back to the keyword answer table; only when neither
	// path produces an answer does it return a typed failure.
	Chat(ctx context.Context, sessionID, message string) (*response_models.ChatReply, error)
	History(sessionID string) []response_models.ChatMessage

	// Interpret maps one utterance to exactly one action: the first
	// keyword group with a hit wins and yields a navigation plus a spoken
	// acknowledgement; otherwise the utterance is forwarded verbatim to
	// the chat path and the reply is spoken.
	Interpret(ctx context.Context, utterance, language string) *response_models.CommandOutcome
}

type AdvisorService struct {
	aiClient ai.Client
	history  memcache.ChatHistoryStore
}

func NewAdvisorService(aiClient ai.Client, history memcache.ChatHistoryStore) AdvisorServiceInterface {
	return &AdvisorService{
		aiClient: aiClient,
		history:  history,
	}
}

func (a *AdvisorService) Chat(ctx context.Context, sessionID, message string) (*response_models.ChatReply, error) {
	if sessionID == "" {
		sessionID = a.history.NewSession()
	}
	a.history.Append(sessionID, "user", message)

	reply, err := a.aiClient.Chat(ctx, message)
	if err != nil {
		log.Printf("Chat model error: %v", err)
		if answer := SmartAnswer(message); answer != "" {
			a.history.Append(sessionID, "bot", answer)
			return &response_models.ChatReply{Reply: answer, Fallback: true, SessionID: sessionID}, nil
		}
		return nil, utils.ErrUpstream
	}

	a.history.Append(sessionID, "bot", reply)
	return &response_models.ChatReply{Reply: reply, SessionID: sessionID}, nil
}

func (a *AdvisorService) History(sessionID string) []response_models.ChatMessage {
	return a.history.Messages(sessionID)
}

func (a *AdvisorService) Interpret(ctx context.Context, utterance, language string) *response_models.CommandOutcome {
	lower := strings.ToLower(utterance)

	for _, group := range commandTable {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				speech := group.ackEN
				if language == "hi" {
					speech = group.ackHI
				}
				return &response_models.CommandOutcome{
					Action: "navigate",
					Route:  group.route,
					Speech: speech,
				}
			}
		}
	}

	reply, err := a.Chat(ctx, "", utterance)
	if err != nil {
		speech := "There is a network issue"
		if language == "hi" {
			speech = "Net ki samasya hai"
		}
		return &response_models.CommandOutcome{Action: "error", Speech: speech}
	}

	return &response_models.CommandOutcome{
		Action: "answer",
		Speech: reply.Reply,
		Reply:  reply.Reply,
	}
}
