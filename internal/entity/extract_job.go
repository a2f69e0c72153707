package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents an extract job for data transfer between layers.
type ExtractJob struct {
	ID            uuid.UUID       `json:"id"`
	FileID        uuid.UUID       `json:"file_id"`
	ContractID    *uuid.UUID      `json:"contract_id,omitempty"`
	BidID         *uuid.UUID      `json:"bid_id,omitempty"`
	Format        string          `json:"format"`
	DocType       *string         `json:"doc_type,omitempty"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        *string         `json:"status,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	NeedsReview   bool            `json:"needs_review"`
	RawText       *string         `json:"raw_text,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	Method        *string         `json:"method,omitempty"`
}
