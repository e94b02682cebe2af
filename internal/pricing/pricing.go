// Package pricing computes the expected registration fee from the published
// per-region tariff table. Amounts are whole rupees.
package pricing

import "strings"

// Tariff holds the fees for one region. FamilyNoSpouse applies when the
// spouse is not attending; regions that do not differentiate simply carry the
// same figure in both family fields.
type Tariff struct {
	Family             int64 `yaml:"family"`
	FamilyNoSpouse     int64 `yaml:"family_no_spouse"`
	GraduateEmployed   int64 `yaml:"graduate_employed"`
	GraduateUnemployed int64 `yaml:"graduate_unemployed"`
	Volunteer          int64 `yaml:"volunteer"`
}

// Table maps the two conference regions to their tariffs. Region names are
// matched by case-insensitive substring ("west", "east"); any other region
// prices at zero.
type Table struct {
	West Tariff `yaml:"west"`
	East Tariff `yaml:"east"`
}

// Default returns the published fee table.
func Default() Table {
	return Table{
		West: Tariff{
			Family:             2500,
			FamilyNoSpouse:     2500,
			GraduateEmployed:   1300,
			GraduateUnemployed: 500,
			Volunteer:          250,
		},
		East: Tariff{
			Family:             2500,
			FamilyNoSpouse:     2000,
			GraduateEmployed:   1300,
			GraduateUnemployed: 500,
			Volunteer:          200,
		},
	}
}

// Amount returns the expected fee for one registration. Matching is by
// case-insensitive substring on region and group type, in precedence order.
// Unknown regions and unmatched group types silently price at zero — report
// totals depend on this permissive default, so it must not become an error.
// maritalStatus is accepted for contract parity but does not influence the
// fee.
func (t Table) Amount(region, groupType, maritalStatus, spouseAttending string) int64 {
	regionLower := strings.ToLower(region)
	groupLower := strings.ToLower(groupType)

	switch {
	case strings.Contains(regionLower, "west"):
		return t.West.amount(groupLower, spouseAttending)
	case strings.Contains(regionLower, "east"):
		return t.East.amount(groupLower, spouseAttending)
	}
	return 0
}

func (tf Tariff) amount(groupLower, spouseAttending string) int64 {
	switch {
	case strings.Contains(groupLower, "family"):
		if strings.Contains(strings.ToLower(spouseAttending), "yes") {
			return tf.Family
		}
		return tf.FamilyNoSpouse
	case strings.Contains(groupLower, "employed") && !strings.Contains(groupLower, "unemployed"):
		return tf.GraduateEmployed
	case strings.Contains(groupLower, "unemployed") || strings.Contains(groupLower, "student"):
		return tf.GraduateUnemployed
	case strings.Contains(groupLower, "children") || strings.Contains(groupLower, "15+"):
		return tf.GraduateUnemployed
	case strings.Contains(groupLower, "volunteer"):
		return tf.Volunteer
	}
	return 0
}
