package application

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("application not found")
	ErrInvalid  = errors.New("invalid application input")
)

type Status string

const (
	StatusDraft       Status = "draft"
	StatusDocsPending Status = "docs_pending"
	StatusEvaluated   Status = "evaluated"
)

// Applications are append-only for audit purposes: rows are created on
// intake and mutated only by status derivation, never deleted.
type Application struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	AppID           string    `gorm:"size:32;uniqueIndex:ux_applications_app_id" json:"id"`
	FullName        string    `gorm:"size:255;not null" json:"full_name"`
	NationalID      *string   `gorm:"size:64" json:"national_id,omitempty"`
	HouseholdSize   int       `gorm:"not null" json:"household_size"`
	MonthlyIncome   float64   `gorm:"type:decimal(18,2)" json:"monthly_income"`
	Status          Status    `gorm:"size:16;default:'draft'" json:"status"`
	StatusUpdatedAt time.Time `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }
