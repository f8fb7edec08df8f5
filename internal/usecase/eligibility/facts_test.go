package eligibility

import (
	"testing"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
)

func chunk(seq int, text string) document.Chunk {
	return document.Chunk{Seq: seq, Text: text}
}

func TestExtractIncomeFigure(t *testing.T) {
	cases := []struct {
		name   string
		chunks []document.Chunk
		want   float64
		ok     bool
	}{
		{"plain", []document.Chunk{chunk(0, "Monthly income: 4500")}, 4500, true},
		{"currency and commas", []document.Chunk{chunk(0, "NET SALARY AED 12,345.67 credited")}, 12345.67, true},
		{"salary credit line", []document.Chunk{chunk(0, "01/05 SALARY CREDIT 8,200.00 ref 9913")}, 8200, true},
		{"first match wins", []document.Chunk{
			chunk(0, "income: 1000"),
			chunk(1, "income: 2000"),
		}, 1000, true},
		{"no figure", []document.Chunk{chunk(0, "opening balance 12.00")}, 0, false},
		{"empty", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractIncomeFigure(tc.chunks)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("extractIncomeFigure = %v, %v; want %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestBuildFacts_UnparsedDocsIgnored(t *testing.T) {
	app := fixtureApp(3000, 2)
	docs := []document.Document{
		{DocID: "d1", Type: document.TypeBankStatement, ParseState: document.ParseStateUploaded},
		{DocID: "d2", Type: document.TypeResume, ParseState: document.ParseStateParsed},
	}
	f := BuildFacts(app, docs, nil)
	if f.Parsed[document.TypeBankStatement] {
		t.Error("uploaded-but-unparsed bank statement counted as parsed")
	}
	if !f.Parsed[document.TypeResume] {
		t.Error("parsed resume not counted")
	}
	if f.BankIncome != nil {
		t.Error("bank income extracted without a parsed statement")
	}
}
