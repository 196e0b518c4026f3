package documents

import (
	"regexp"
	"strings"
)

// Trailing time-period patterns stripped per frequency. An optional
// ".<ext>" style tail after the period token is swallowed as well, so
// "Bank Statement June 2024.pdf" groups as "Bank Statement".
var (
	monthlyYearAbbrevRe = regexp.MustCompile(`\s+\d{4}\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\w*$`)
	monthlyFullYearRe   = regexp.MustCompile(`\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\.?\w*$`)
	quarterlyRe         = regexp.MustCompile(`\s+Q[1-4]\s+\d{4}\.?\w*$`)
	yearlyRe            = regexp.MustCompile(`\s+\d{4}\.?\w*$`)

	anyYearRe    = regexp.MustCompile(`\s+20\d{2}`)
	anyMonthRe   = regexp.MustCompile(`\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)
	anyQuarterRe = regexp.MustCompile(`\s+Q[1-4]`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// BaseDocumentName strips the trailing time-period token from a document
// name so recurring instances ("Bank Statement June 2024", "Bank Statement
// July 2024") group under one display name. Used only for gallery grouping,
// never for request matching.
func BaseDocumentName(name string, freq Frequency) string {
	base := name

	switch freq {
	case FrequencyMonthly:
		base = monthlyYearAbbrevRe.ReplaceAllString(name, "")
		base = monthlyFullYearRe.ReplaceAllString(base, "")
	case FrequencyQuarterly:
		base = quarterlyRe.ReplaceAllString(base, "")
	case FrequencyYearly:
		base = yearlyRe.ReplaceAllString(base, "")
	default:
		base = anyYearRe.ReplaceAllString(name, "")
		base = anyMonthRe.ReplaceAllString(base, "")
		base = anyQuarterRe.ReplaceAllString(base, "")
	}

	base = strings.TrimSpace(whitespaceRe.ReplaceAllString(base, " "))
	if base == "" || base == name {
		return name
	}
	return base
}

// Group is a set of documents sharing a base name, for carousel display.
type Group struct {
	BaseName  string
	Documents []Document
}

// GroupByBaseName buckets documents by base name. Input is expected in
// newest-first order; each group keeps that order and groups appear in the
// order of their newest member.
func GroupByBaseName(docs []Document) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, doc := range docs {
		base := BaseDocumentName(doc.Name, doc.Frequency)
		i, ok := index[base]
		if !ok {
			index[base] = len(groups)
			groups = append(groups, Group{BaseName: base})
			i = len(groups) - 1
		}
		groups[i].Documents = append(groups[i].Documents, doc)
	}
	return groups
}
