package ingest

import (
	"time"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
)

type UploadInput struct {
	DocType     document.Type
	Filename    string
	ContentType string
	Data        []byte
}

type DocumentDTO struct {
	ID          string    `json:"id"`
	DocType     string    `json:"doc_type"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	ParseState  string    `json:"parse_state"`
	CreatedAt   time.Time `json:"created_at"`
}

type ParseAllResult struct {
	ParsedOK int `json:"parsed_ok"`
	Total    int `json:"total"`
}

func toDTO(d *document.Document) *DocumentDTO {
	return &DocumentDTO{
		ID:          d.DocID,
		DocType:     string(d.Type),
		Filename:    d.Filename,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		ParseState:  string(d.ParseState),
		CreatedAt:   d.CreatedAt,
	}
}
