package application

import "time"

type CreateInput struct {
	FullName      string
	NationalID    *string
	HouseholdSize int
	MonthlyIncome float64
}

type ApplicationDTO struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	NationalID    *string   `json:"national_id,omitempty"`
	HouseholdSize int       `json:"household_size"`
	MonthlyIncome float64   `json:"monthly_income"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type StatusDTO struct {
	Status          string   `json:"status"`
	MissingRequired []string `json:"missing_required"`
}
