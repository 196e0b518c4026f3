package documents

import "testing"

func TestSimilarNames(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"same type different year", "Tax Returns 2023.pdf", "Tax Returns 2024", true},
		{"extension and case ignored", "Bank Statement.pdf", "bank statement", true},
		{"single word exact", "Passport", "Passport.pdf", true},
		{"one shared word below threshold", "Insurance Policy", "Policy Statement June", false},
		{"one shared word against longer name", "Passport", "Passport Copy 2024", false},
		{"nothing in common", "Tax Returns", "Bank Statement", false},
		{"only short tokens never match", "W2.pdf", "W2", false},
		{"both empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimilarNames(tt.a, tt.b); got != tt.want {
				t.Fatalf("SimilarNames(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatchesUpload(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		uploaded  string
		want      bool
	}{
		{"upload contains request stem", "Bank Statement", "bank statement june 2024.pdf", true},
		{"request contains upload stem", "Bank Statement June 2024", "Bank Statement.pdf", true},
		{"exact ignoring extension and case", "Tax Returns", "TAX RETURNS.PDF", true},
		{"unrelated names", "Insurance Policy", "tax returns.pdf", false},
		{"empty upload stem", "Bank Statement", ".pdf", false},
		{"empty request", "", "statement.pdf", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesUpload(tt.requested, tt.uploaded); got != tt.want {
				t.Fatalf("MatchesUpload(%q, %q) = %v, want %v", tt.requested, tt.uploaded, got, tt.want)
			}
		})
	}
}

func TestExtractVersionYear(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tax Returns 2024", "2024"},
		{"1999 Audit", "1999"},
		{"Passport", ""},
		{"Form 10250", ""},
	}
	for _, tt := range tests {
		if got := extractVersionYear(tt.in); got != tt.want {
			t.Fatalf("extractVersionYear(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
