package domain

import "time"

// ChatReply is generated per request and never stored. Sources is nil when
// the answer was produced without any document context.
type ChatReply struct {
	Response  string    `json:"response"`
	Sources   []string  `json:"sources"`
	Timestamp time.Time `json:"timestamp"`
}
