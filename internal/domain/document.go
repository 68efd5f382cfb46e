package domain

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	FileName      string    `json:"file_name"`
	FileURL       string    `json:"file_url"`
	FileSize      int64     `json:"file_size"`
	FileType      string    `json:"file_type"`
	ExtractedText *string   `json:"extracted_text"`
	CreatedAt     time.Time `json:"created_at"`
}

// Upload is a received file before it is stored.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type DocumentSummary struct {
	TotalDocuments int            `json:"total_documents"`
	TotalSize      int64          `json:"total_size"`
	FileTypes      map[string]int `json:"file_types"`
}

// DocumentText is the slice of a document the chat responder needs.
type DocumentText struct {
	FileName      string
	ExtractedText string
}
