package utils

import (
	"regexp"
)

var iataRe = regexp.MustCompile(`\(([A-Z]{3})\)`)

// ExtractIATACode pulls the 3-letter code out of an airport label like
// "Bristol (BRS)". Labels without a parenthesized code are returned verbatim
// and treated as the code itself.
func ExtractIATACode(label string) string {
	if match := iataRe.FindStringSubmatch(label); match != nil {
		return match[1]
	}
	return label
}
