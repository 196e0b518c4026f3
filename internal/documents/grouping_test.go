package documents

import (
	"testing"
	"time"
)

func TestBaseDocumentName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		freq Frequency
		want string
	}{
		{"monthly full month and year", "Bank Statement June 2024.pdf", FrequencyMonthly, "Bank Statement"},
		{"monthly year then abbreviated month", "Payroll 2024 Mar.xlsx", FrequencyMonthly, "Payroll"},
		{"quarterly", "P&L Q1 2025", FrequencyQuarterly, "P&L"},
		{"yearly with extension", "Tax Returns 2023.pdf", FrequencyYearly, "Tax Returns"},
		{"yearly without period token", "Tax Returns", FrequencyYearly, "Tax Returns"},
		{"no frequency strips year", "Passport 2022", "", "Passport"},
		{"no frequency strips quarter", "Portfolio Review Q3", "", "Portfolio Review"},
		{"nothing to strip", "Insurance Policy", "", "Insurance Policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseDocumentName(tt.in, tt.freq); got != tt.want {
				t.Fatalf("BaseDocumentName(%q, %q) = %q, want %q", tt.in, tt.freq, got, tt.want)
			}
		})
	}
}

func TestGroupByBaseName(t *testing.T) {
	now := time.Now().UTC()
	newest := Document{ID: "d1", Name: "Bank Statement July 2024", Frequency: FrequencyMonthly, CreatedAt: now}
	middle := Document{ID: "d2", Name: "Tax Returns 2023", Frequency: FrequencyYearly, CreatedAt: now.Add(-time.Hour)}
	oldest := Document{ID: "d3", Name: "Bank Statement June 2024", Frequency: FrequencyMonthly, CreatedAt: now.Add(-2 * time.Hour)}

	groups := GroupByBaseName([]Document{newest, middle, oldest})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].BaseName != "Bank Statement" {
		t.Fatalf("expected first group Bank Statement, got %q", groups[0].BaseName)
	}
	if len(groups[0].Documents) != 2 || groups[0].Documents[0].ID != "d1" || groups[0].Documents[1].ID != "d3" {
		t.Fatalf("unexpected Bank Statement members: %+v", groups[0].Documents)
	}
	if groups[1].BaseName != "Tax Returns" || len(groups[1].Documents) != 1 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}
