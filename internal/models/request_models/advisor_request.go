package request_models

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type CommandRequest struct {
	Utterance string `json:"utterance" binding:"required"`
	Language  string `json:"language"`
}
