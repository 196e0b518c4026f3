package documents

import (
	"regexp"
	"strings"
)

var (
	extensionRe = regexp.MustCompile(`\.[^/.]+$`)
	yearTokenRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// nameStem lowercases a document name and strips a trailing file extension.
func nameStem(name string) string {
	return extensionRe.ReplaceAllString(strings.ToLower(name), "")
}

// significantWords splits a stem into whitespace-delimited words longer than
// two characters. Short tokens ("of", "Q1", "to") carry no signal for
// matching document types.
func significantWords(stem string) []string {
	var out []string
	for _, w := range strings.Fields(stem) {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// SimilarNames reports whether two document names describe the same document
// type. Extensions are stripped, both names are split into significant words,
// and the overlap must reach min(2, 0.6 x the larger word count). This is the
// rule that turns "request Tax Returns 2024" into an update ask when the
// client already has "Tax Returns 2023.pdf" on file.
func SimilarNames(a, b string) bool {
	aWords := significantWords(nameStem(a))
	bWords := significantWords(nameStem(b))

	bSet := make(map[string]struct{}, len(bWords))
	for _, w := range bWords {
		bSet[w] = struct{}{}
	}

	matching := 0
	for _, w := range aWords {
		if _, ok := bSet[w]; ok {
			matching++
		}
	}

	larger := len(aWords)
	if len(bWords) > larger {
		larger = len(bWords)
	}

	threshold := float64(larger) * 0.6
	if threshold > 2 {
		threshold = 2
	}
	return matching > 0 && float64(matching) >= threshold
}

// MatchesUpload reports whether an uploaded file fulfills an outstanding
// request. The uploaded filename's stem and the requested name's stem must
// contain one another (either direction, case-insensitive).
func MatchesUpload(requestedName, uploadedFileName string) bool {
	reqStem := nameStem(requestedName)
	upStem := nameStem(uploadedFileName)
	if reqStem == "" || upStem == "" {
		return false
	}
	return strings.Contains(upStem, reqStem) || strings.Contains(reqStem, upStem)
}

// extractVersionYear pulls a 4-digit year token out of a requested document
// name ("Tax Returns 2024" -> "2024"). Empty when absent.
func extractVersionYear(name string) string {
	return yearTokenRe.FindString(name)
}
