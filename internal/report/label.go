package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Label renders a grouping value for display. Blank values, which group on
// their own rather than being dropped, render as "Unspecified"; everything
// else is title-cased so "nairobi" and "NAIROBI" read the same in reports.
func Label(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Unspecified"
	}
	return titleCaser.String(strings.ToLower(trimmed))
}
