// Package layout resolves a document, its visible sections, and the style
// settings into a renderer-agnostic tree of content blocks. Both render
// targets consume this tree, so section selection, ordering, and text content
// can never diverge between the live preview and the PDF export.
package layout

import "strings"

// monthNames maps two-digit month values to display names.
var monthNames = map[string]string{
	"01": "January",
	"02": "February",
	"03": "March",
	"04": "April",
	"05": "May",
	"06": "June",
	"07": "July",
	"08": "August",
	"09": "September",
	"10": "October",
	"11": "November",
	"12": "December",
}

// FormatRange formats a plain start/end date range. An ongoing entry reads
// "<start> - Present"; an entry without an end date shows the start alone.
func FormatRange(start, end string, ongoing bool) string {
	if start == "" && end == "" && !ongoing {
		return ""
	}
	if ongoing {
		return start + " - Present"
	}
	if end == "" {
		return start
	}
	return start + " - " + end
}

// FormatMonthYearRange formats a range given as separate month/year pairs.
// Months resolve through the fixed month-name table; an unrecognized month
// leaves just the year. The end date is omitted entirely when it is not
// provided and the entry is not ongoing.
func FormatMonthYearRange(startMonth, startYear, endMonth, endYear string, ongoing bool) string {
	start := monthYear(startMonth, startYear)
	if ongoing {
		return start + " - Present"
	}
	end := monthYear(endMonth, endYear)
	if end == "" {
		return start
	}
	return start + " - " + end
}

func monthYear(month, year string) string {
	if year == "" {
		return ""
	}
	name := monthNames[month]
	return strings.TrimSpace(name + " " + year)
}
