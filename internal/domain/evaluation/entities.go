package evaluation

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("evaluation not found")

type Status string

const (
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
	StatusManualReview Status = "manual_review"
)

// RuleOutcome records one rule's verdict. The slice order matches rule
// declaration order so two runs over identical inputs serialize
// byte-identically, which the audit trail depends on.
type RuleOutcome struct {
	RuleID string  `json:"id"`
	Passed bool    `json:"passed"`
	Reason string  `json:"reason"`
	Weight float64 `json:"weight"`
}

// Evaluation rows are append-only history; every evaluate call inserts a
// fresh row rather than merging into a prior one.
type Evaluation struct {
	ID            uint64        `gorm:"primaryKey;column:id" json:"-"`
	EvalID        string        `gorm:"size:32;uniqueIndex:ux_evaluations_eval_id" json:"id"`
	ApplicationID string        `gorm:"size:32;index:idx_evaluations_application" json:"application_id"`
	Score         float64       `json:"score"`
	Status        Status        `gorm:"size:16" json:"status"`
	Outcomes      []RuleOutcome `gorm:"serializer:json" json:"outcomes"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (Evaluation) TableName() string { return "evaluations" }
