package response_models

type ChatReply struct {
	Reply     string `json:"reply"`
	Fallback  bool   `json:"fallback,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    string `json:"sender"` // "user" | "bot"
	Timestamp int64  `json:"timestamp"`
}

// CommandOutcome is the interpreter's single action for one utterance:
// either a navigation with a spoken acknowledgement, or a forwarded
// answer from the chat assistant.
type CommandOutcome struct {
	Action string `json:"action"` // "navigate" | "answer" | "error"
	Route  string `json:"route,omitempty"`
	Speech string `json:"speech"`
	Reply  string `json:"reply,omitempty"`
}
