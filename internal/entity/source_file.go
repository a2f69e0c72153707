package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceFile represents an ingested document file for data transfer between layers.
type SourceFile struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	DocType     string    `json:"doc_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
