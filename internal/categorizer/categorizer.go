// Package categorizer maps free-text group types onto the fixed report
// categories used by every summary table.
package categorizer

import "strings"

// Category is a report bucket derived from a record's group type. The set is
// closed except that unrecognized text passes through verbatim, so raw
// strings stay visible in the summaries instead of disappearing into Unknown.
type Category string

// The fixed category set, in report column order.
const (
	Family                   Category = "Family"
	SingleGraduateEmployed   Category = "Single Graduate (Employed)"
	SingleGraduateUnemployed Category = "Single Graduate (Unemployed)"
	GraduateChildren15Plus   Category = "Graduates' children (15+)"
	Students                 Category = "Students"
	Volunteers               Category = "Volunteers"
	Unknown                  Category = "Unknown"
)

// Known lists the closed category set in report column order.
var Known = []Category{
	Family,
	SingleGraduateEmployed,
	SingleGraduateUnemployed,
	GraduateChildren15Plus,
	Students,
	Volunteers,
	Unknown,
}

// Normalize buckets a free-text group type with case-insensitive substring
// checks, in precedence order. Empty input maps to Unknown; anything
// unrecognized is returned verbatim.
func Normalize(groupType string) Category {
	gt := strings.ToLower(strings.TrimSpace(groupType))
	if gt == "" {
		return Unknown
	}
	switch {
	case strings.Contains(gt, "family"):
		return Family
	case strings.Contains(gt, "employed") && !strings.Contains(gt, "unemployed"):
		return SingleGraduateEmployed
	case strings.Contains(gt, "unemployed"):
		return SingleGraduateUnemployed
	case strings.Contains(gt, "children") || strings.Contains(gt, "15+"):
		return GraduateChildren15Plus
	case strings.Contains(gt, "student"):
		return Students
	case strings.Contains(gt, "volunteer"):
		return Volunteers
	}
	return Category(groupType)
}
