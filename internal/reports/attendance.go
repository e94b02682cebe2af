package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"sjtech/spicon-recon/internal/models"
)

// GenderCounts breaks attendees down by the gender recorded on their
// registration. Anything other than the two exact values lands in Other.
type GenderCounts struct {
	Male   int
	Female int
	Other  int
}

func (g *GenderCounts) add(gender string) {
	switch gender {
	case "Male":
		g.Male++
	case "Female":
		g.Female++
	default:
		g.Other++
	}
}

func (g *GenderCounts) merge(other GenderCounts) {
	g.Male += other.Male
	g.Female += other.Female
	g.Other += other.Other
}

// DistrictAttendance counts one district's registrants and how many of them
// are settled up and therefore counted as attending.
type DistrictAttendance struct {
	District   string
	Registered int
	Attending  int
	Genders    GenderCounts
}

// RegionAttendance rolls its districts up into one region line.
type RegionAttendance struct {
	Region     string
	Districts  []DistrictAttendance
	Registered int
	Attending  int
	Genders    GenderCounts
}

// AttendanceReport is the region and district attendance roll-up. A
// registrant attends once their attributed payments cover the expected fee.
type AttendanceReport struct {
	Regions    []RegionAttendance
	Registered int
	Attending  int
	Genders    GenderCounts
}

// Rate is the share of registrants counted as attending, in percent. Zero
// when nobody registered.
func (r AttendanceReport) Rate() decimal.Decimal {
	if r.Registered == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(r.Attending) * 100).Div(decimal.NewFromInt(int64(r.Registered)))
}

// Attendance builds the roll-up from the prepared snapshot. Each registrant
// is priced by the tariff table; they count as attending when the amount
// recorded on their own registration covers it. The payment ledger is not
// consulted here: attendance reflects what the registration desk recorded,
// not what the matcher can attribute. Genders are tallied over attendees
// only.
func (e *Engine) Attendance(p *Prepared) AttendanceReport {
	type districtKey struct {
		region   string
		district string
	}
	buckets := make(map[districtKey]*DistrictAttendance)

	for _, reg := range p.Registrations {
		key := districtKey{region: orDefault(reg.Region), district: orDefault(reg.District)}
		row, ok := buckets[key]
		if !ok {
			row = &DistrictAttendance{District: key.district}
			buckets[key] = row
		}

		row.Registered++
		if attending(e.expected(reg), reg) {
			row.Attending++
			row.Genders.add(reg.Gender)
		}
	}

	regions := make(map[string]*RegionAttendance)
	for key, row := range buckets {
		region, ok := regions[key.region]
		if !ok {
			region = &RegionAttendance{Region: key.region}
			regions[key.region] = region
		}
		region.Districts = append(region.Districts, *row)
		region.Registered += row.Registered
		region.Attending += row.Attending
		region.Genders.merge(row.Genders)
	}

	report := AttendanceReport{}
	for _, region := range regions {
		sort.Slice(region.Districts, func(i, j int) bool {
			return region.Districts[i].District < region.Districts[j].District
		})
		report.Regions = append(report.Regions, *region)
		report.Registered += region.Registered
		report.Attending += region.Attending
		report.Genders.merge(region.Genders)
	}
	sort.Slice(report.Regions, func(i, j int) bool {
		return report.Regions[i].Region < report.Regions[j].Region
	})
	return report
}

// attending reports whether the amount recorded on the registration covers
// the expected fee. A zero-fee registrant always attends.
func attending(expected int64, reg models.Registration) bool {
	return decimal.NewFromInt(expected).Sub(reg.AmountPaid.Decimal).LessThanOrEqual(decimal.Zero)
}
