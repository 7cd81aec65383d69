package discount

import (
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// space matches the same characters as \s in ECMAScript, including no-break spaces.
const space = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var (
	paragraphEnd  = regexp.MustCompile(space + `*</p>` + space + `*`)
	htmlTag       = regexp.MustCompile(`(?i)<[^>]+>`)
	crlf          = regexp.MustCompile(space + `*\r\n` + space + `*`)
	nbsp          = regexp.MustCompile(space + `*&nbsp;` + space + `*`)
	doublePeriod  = regexp.MustCompile(`([^.])\.\.` + space)
	conditionExpr = newConditionExpr()
)

func newConditionExpr() *regexp2.Regexp {
	re := regexp2.MustCompile(`(minst|över|ordervärde) ([0-9]+) kr(onor)?(?! rabatt)`, regexp2.IgnoreCase)
	re.MatchTimeout = 100 * time.Millisecond
	return re
}

// StripHTML turns an upstream HTML fragment into a single line of plain text.
// The rules run in a fixed order; later rules rely on the output of earlier ones.
func StripHTML(html string) string {
	s := paragraphEnd.ReplaceAllString(html, ". ")
	s = strings.ReplaceAll(s, " .", ".")
	s = htmlTag.ReplaceAllString(s, "")
	s = crlf.ReplaceAllString(s, ". ")
	s = nbsp.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\n", "")
	// Two dots collapse to one, an ellipsis is left alone.
	s = doublePeriod.ReplaceAllString(s, "${1}. ")
	return strings.TrimSpace(s)
}

// FindCondition extracts a minimum order value such as "Minst 300 kr" from a
// Swedish description. Amounts directly followed by " rabatt" are discounts,
// not conditions, and are skipped.
func FindCondition(description string) *string {
	m, err := conditionExpr.FindStringMatch(description)
	if err != nil || m == nil {
		return nil
	}
	amount := m.GroupByNumber(2).String()
	if amount == "" {
		return nil
	}
	condition := "Minst " + amount + " kr"
	return &condition
}
