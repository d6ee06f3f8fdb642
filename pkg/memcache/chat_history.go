package memcache

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"kissan/internal/models/response_models"
)

// ChatHistoryStore keeps per-session chat transcripts in memory. Messages
// are append-only and ordered; a whole session expires after its TTL and
// nothing survives a process restart.
type ChatHistoryStore interface {
	Append(sessionID string, sender string, text string) response_models.ChatMessage

	// Messages returns the transcript for sessionID in append order,
	// or nil if the session is missing or expired.
	Messages(sessionID string) []response_models.ChatMessage

	NewSession() string
}

type session struct {
	messages  []response_models.ChatMessage
	expiresAt time.Time
}

type ChatHistory struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*session
}

func NewChatHistory(ttl time.Duration) *ChatHistory {
	return &ChatHistory{
		ttl:      ttl,
		sessions: make(map[string]*session),
	}
}

func (s *ChatHistory) NewSession() string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{expiresAt: time.Now().Add(s.ttl)}
	return id
}

func (s *ChatHistory) Append(sessionID string, sender string, text string) response_models.ChatMessage {
	msg := response_models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || time.Now().After(sess.expiresAt) {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	sess.expiresAt = time.Now().Add(s.ttl)
	sess.messages = append(sess.messages, msg)

	// cleanup expired sessions once the map grows
	if len(s.sessions) > 1000 {
		now := time.Now()
		for id, old := range s.sessions {
			if now.After(old.expiresAt) {
				delete(s.sessions, id)
			}
		}
	}

	return msg
}

func (s *ChatHistory) Messages(sessionID string) []response_models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok || time.Now().After(sess.expiresAt) {
		return nil
	}
	out := make([]response_models.ChatMessage, len(sess.messages))
	copy(out, sess.messages)
	return out
}
