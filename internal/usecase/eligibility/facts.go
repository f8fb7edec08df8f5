package eligibility

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
)

// Facts is the immutable snapshot a rule evaluates against: application
// fields, which required documents are parsed, and simple figures pulled
// out of the parsed text.
type Facts struct {
	HouseholdSize int
	MonthlyIncome float64
	Parsed        map[document.Type]bool
	// BankIncome is the income figure extracted from the parsed bank
	// statement; nil while that evidence is missing.
	BankIncome *float64
}

// BuildFacts assembles the snapshot. bankChunks are the chunks of the
// parsed bank statement, in sequence order; pass nil when it is not
// parsed yet.
func BuildFacts(app *application.Application, docs []document.Document, bankChunks []document.Chunk) Facts {
	f := Facts{
		HouseholdSize: app.HouseholdSize,
		MonthlyIncome: app.MonthlyIncome,
		Parsed:        make(map[document.Type]bool, len(docs)),
	}
	for _, d := range docs {
		if d.ParseState == document.ParseStateParsed {
			f.Parsed[d.Type] = true
		}
	}
	if f.Parsed[document.TypeBankStatement] {
		if v, ok := extractIncomeFigure(bankChunks); ok {
			f.BankIncome = &v
		}
	}
	return f
}

// extractIncomeFigure scans chunk text for an income or salary amount.
// The first match in (page, seq) order wins, keeping the result
// deterministic across evaluations of an unchanged chunk set.
var incomeRe = regexp.MustCompile(`(?i)(?:net\s+|monthly\s+)?(?:salary|income)(?:\s+credit)?\s*[:\-]?\s*(?:aed\s*)?([0-9][0-9,]*(?:\.[0-9]+)?)`)

func extractIncomeFigure(chunks []document.Chunk) (float64, bool) {
	for _, c := range chunks {
		m := incomeRe.FindStringSubmatch(c.Text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}
