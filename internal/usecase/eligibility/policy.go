package eligibility

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy carries the tunable parts of the rule engine. Thresholds are
// configuration, not hardcoded policy facts; a YAML file can override any
// field of the compiled defaults.
type Policy struct {
	// Score thresholds: approved if score >= ApproveAt, rejected if
	// score < RejectAt, manual review in between.
	ApproveAt float64 `yaml:"approve_at"`
	RejectAt  float64 `yaml:"reject_at"`

	// Income ceilings that make an applicant eligible for support.
	LowIncomeMax    float64 `yaml:"low_income_max"`
	PerCapitaMax    float64 `yaml:"per_capita_max"`
	IncomeTolerance float64 `yaml:"income_tolerance"`

	// StrictEvidence controls the reason text for rules whose facts are
	// not extractable yet: true yields the bare "missing evidence",
	// false names the absent document.
	StrictEvidence bool `yaml:"strict_evidence"`

	// Weights overrides per rule id; zero/absent keeps the default.
	Weights map[string]float64 `yaml:"weights"`
}

func DefaultPolicy() Policy {
	return Policy{
		ApproveAt:       0.70,
		RejectAt:        0.30,
		LowIncomeMax:    15000,
		PerCapitaMax:    4000,
		IncomeTolerance: 0.10,
		StrictEvidence:  true,
	}
}

// LoadPolicy overlays the YAML at path onto the defaults. An empty path
// returns the defaults untouched.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read rules config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse rules config: %w", err)
	}
	if err := p.validate(); err != nil {
		return p, err
	}
	return p, nil
}

func (p Policy) validate() error {
	if p.ApproveAt < 0 || p.ApproveAt > 1 || p.RejectAt < 0 || p.RejectAt > 1 {
		return fmt.Errorf("thresholds must be in [0,1]: approve_at=%v reject_at=%v", p.ApproveAt, p.RejectAt)
	}
	if p.RejectAt > p.ApproveAt {
		return fmt.Errorf("reject_at (%v) must not exceed approve_at (%v)", p.RejectAt, p.ApproveAt)
	}
	return nil
}

func (p Policy) weight(ruleID string, def float64) float64 {
	if w, ok := p.Weights[ruleID]; ok && w > 0 {
		return w
	}
	return def
}
