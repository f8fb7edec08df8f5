package eligibility

import (
	"fmt"
	"math"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
)

// Rule is one weighted predicate over a fact snapshot. Evaluate must be
// pure: same facts, same verdict.
type Rule struct {
	ID       string
	Weight   float64
	Evaluate func(f Facts) (passed bool, reason string)
}

const missingEvidence = "missing evidence"

// Rules returns the rule table in declaration order. Outcome ordering in
// evaluation results follows this slice, which keeps audit trails
// reproducible.
func Rules(p Policy) []Rule {
	presence := func(t document.Type, weight float64, why string) Rule {
		return Rule{
			ID:     string(t) + "_present",
			Weight: p.weight(string(t)+"_present", weight),
			Evaluate: func(f Facts) (bool, string) {
				if f.Parsed[t] {
					return true, why
				}
				if p.StrictEvidence {
					return false, missingEvidence
				}
				return false, fmt.Sprintf("%s not uploaded or not parsed yet", t)
			},
		}
	}

	return []Rule{
		{
			ID:     "income_below_threshold",
			Weight: p.weight("income_below_threshold", 3),
			Evaluate: func(f Facts) (bool, string) {
				if f.MonthlyIncome <= p.LowIncomeMax {
					return true, fmt.Sprintf("declared income %.0f within support ceiling %.0f", f.MonthlyIncome, p.LowIncomeMax)
				}
				return false, fmt.Sprintf("declared income %.0f above support ceiling %.0f", f.MonthlyIncome, p.LowIncomeMax)
			},
		},
		{
			ID:     "per_capita_income",
			Weight: p.weight("per_capita_income", 2),
			Evaluate: func(f Facts) (bool, string) {
				if f.HouseholdSize < 1 {
					return false, "household size not positive"
				}
				perCapita := f.MonthlyIncome / float64(f.HouseholdSize)
				if perCapita <= p.PerCapitaMax {
					return true, fmt.Sprintf("per-capita income %.0f within ceiling %.0f", perCapita, p.PerCapitaMax)
				}
				return false, fmt.Sprintf("per-capita income %.0f above ceiling %.0f", perCapita, p.PerCapitaMax)
			},
		},
		{
			ID:     "identity_verified",
			Weight: p.weight("identity_verified", 2),
			Evaluate: func(f Facts) (bool, string) {
				if f.Parsed[document.TypeEIDFront] && f.Parsed[document.TypeEIDBack] {
					return true, "both Emirates ID sides parsed"
				}
				if p.StrictEvidence {
					return false, missingEvidence
				}
				return false, "eid_front and eid_back must both be parsed"
			},
		},
		presence(document.TypeBankStatement, 2, "bank statement parsed"),
		{
			ID:     "income_consistency",
			Weight: p.weight("income_consistency", 2),
			Evaluate: func(f Facts) (bool, string) {
				if f.BankIncome == nil {
					if p.StrictEvidence {
						return false, missingEvidence
					}
					return false, "no income figure extracted from bank_statement"
				}
				bank := *f.BankIncome
				diff := math.Abs(f.MonthlyIncome - bank)
				limit := p.IncomeTolerance * math.Max(bank, 1)
				if diff <= limit {
					return true, fmt.Sprintf("declared income %.0f matches statement figure %.0f", f.MonthlyIncome, bank)
				}
				return false, fmt.Sprintf("declared income %.0f deviates from statement figure %.0f", f.MonthlyIncome, bank)
			},
		},
		presence(document.TypeSalaryCertificate, 1, "salary certificate parsed"),
		presence(document.TypeCreditReport, 1, "credit report parsed"),
		presence(document.TypeUtilityBill, 1, "utility bill parsed"),
		presence(document.TypeResume, 1, "resume parsed"),
	}
}

// TotalWeight sums all rule weights; the score denominator.
func TotalWeight(rules []Rule) float64 {
	var sum float64
	for _, r := range rules {
		sum += r.Weight
	}
	return sum
}
