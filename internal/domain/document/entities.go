package document

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("document not found")
	// ErrBusy signals another parse is in flight for the same document.
	ErrBusy  = errors.New("document busy: parse in progress")
	ErrParse = errors.New("document parse failed")
)

type Type string

const (
	TypeEIDFront          Type = "eid_front"
	TypeEIDBack           Type = "eid_back"
	TypeBankStatement     Type = "bank_statement"
	TypeSalaryCertificate Type = "salary_certificate"
	TypeCreditReport      Type = "credit_report"
	TypeUtilityBill       Type = "utility_bill"
	TypeResume            Type = "resume"
)

// RequiredTypes is the fixed checklist an application must satisfy with
// parsed documents before it is considered complete.
func RequiredTypes() []Type {
	return []Type{
		TypeEIDFront,
		TypeEIDBack,
		TypeBankStatement,
		TypeSalaryCertificate,
		TypeCreditReport,
		TypeUtilityBill,
		TypeResume,
	}
}

func ValidType(t Type) bool {
	for _, r := range RequiredTypes() {
		if t == r {
			return true
		}
	}
	return false
}

type ParseState string

const (
	ParseStateUploaded ParseState = "uploaded"
	ParseStateParsed   ParseState = "parsed"
	ParseStateFailed   ParseState = "failed"
)

// Document belongs to exactly one application; at most one row exists per
// (application, type); a re-upload replaces the previous row and blob.
type Document struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"-"`
	DocID         string     `gorm:"size:32;uniqueIndex:ux_documents_doc_id" json:"id"`
	ApplicationID string     `gorm:"size:32;index:idx_documents_application" json:"application_id"`
	Type          Type       `gorm:"size:32;column:doc_type" json:"doc_type"`
	Filename      string     `gorm:"size:255" json:"filename"`
	ContentType   string     `gorm:"size:128" json:"content_type"`
	SizeBytes     int64      `json:"size_bytes"`
	BlobPath      string     `gorm:"size:512" json:"-"`
	ParseState    ParseState `gorm:"size:16;default:'uploaded'" json:"parse_state"`
	ParseErr      string     `gorm:"type:text" json:"-"`
	ParsedAt      *time.Time `json:"parsed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string { return "documents" }

// Chunk is a page-anchored span of extracted text, the unit of retrieval.
// Chunks are immutable once created; reparsing replaces the whole set.
// The embedding is nil until reindexing fills it in.
type Chunk struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	ChunkID   string    `gorm:"size:36;uniqueIndex:ux_chunks_chunk_id" json:"id"`
	DocID     string    `gorm:"size:32;index:idx_chunks_doc" json:"document_id"`
	Seq       int       `gorm:"not null" json:"seq"`
	Page      *int      `json:"page,omitempty"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Embedding []float32 `gorm:"serializer:json" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Chunk) TableName() string { return "chunks" }
