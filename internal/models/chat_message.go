package models

import "time"

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Reply provenance tags
const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
	SourceError    = "error"
)

// ChatMessage is one entry in a chat session transcript
type ChatMessage struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source,omitempty"`
}
