package models

import "time"

// AIConversation is one exchange with the assistant
type AIConversation struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Category    string    `json:"category"`
}

// VoiceCommand records an interpreted voice instruction
type VoiceCommand struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Response  string    `json:"response"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
}
