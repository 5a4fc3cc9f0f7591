package report

import (
	"sort"
	"strings"

	"rollcall/internal/records"
)

// Summary holds the headline metrics for one canonical set.
type Summary struct {
	Total         int     `json:"total"`
	Youth         int     `json:"youth"`
	Adult         int     `json:"adult"`
	Female        int     `json:"female"`
	DisabilityYes int     `json:"disability_yes"`
	YouthPct      float64 `json:"youth_pct"`
	FemalePct     float64 `json:"female_pct"`
	DisabilityPct float64 `json:"disability_pct"`
}

// KeyCount is a single-key group count, ordered by count descending.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// PairCount is a (location, key) group count, ordered by location then key.
type PairCount struct {
	Location string `json:"location"`
	Key      string `json:"key"`
	Count    int    `json:"count"`
}

// CrossTab is an age-group by gender cell. Gender is normalized to
// lower-case trimmed form for grouping; empty values form their own group.
type CrossTab struct {
	AgeGroup records.AgeGroup `json:"age_group"`
	Gender   string           `json:"gender"`
	Count    int              `json:"count"`
}

// Percent returns count/total scaled to 100, and 0 when total is 0.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Summarize computes the headline metrics. Female counting is a
// case-insensitive substring match so "Female" and "female " both count.
func Summarize(rows []records.Record) Summary {
	s := Summary{Total: len(rows)}
	for _, rec := range rows {
		switch rec.AgeGroup {
		case records.AgeGroupYouth:
			s.Youth++
		case records.AgeGroupAdult:
			s.Adult++
		}
		if strings.Contains(strings.ToLower(rec.Gender), "female") {
			s.Female++
		}
		if rec.DisabilityStatus == records.DisabilityYes {
			s.DisabilityYes++
		}
	}
	s.YouthPct = Percent(s.Youth, s.Total)
	s.FemalePct = Percent(s.Female, s.Total)
	s.DisabilityPct = Percent(s.DisabilityYes, s.Total)
	return s
}

// NormalizeGroupKey produces the matching form of a grouping value.
func NormalizeGroupKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// CrossTabAgeGender counts records per (age group, normalized gender) cell.
// Cells are ordered by age group (Youth, Adult, Unknown) then gender.
func CrossTabAgeGender(rows []records.Record) []CrossTab {
	return crossTab(rows, func(records.Record) bool { return true })
}

// CrossTabAgeGenderDisabled is the same cross-tabulation restricted to
// records whose disability status is Yes.
func CrossTabAgeGenderDisabled(rows []records.Record) []CrossTab {
	return crossTab(rows, func(r records.Record) bool {
		return r.DisabilityStatus == records.DisabilityYes
	})
}

var ageGroupOrder = map[records.AgeGroup]int{
	records.AgeGroupYouth:   0,
	records.AgeGroupAdult:   1,
	records.AgeGroupUnknown: 2,
}

func crossTab(rows []records.Record, include func(records.Record) bool) []CrossTab {
	type cell struct {
		group  records.AgeGroup
		gender string
	}
	counts := make(map[cell]int)
	for _, rec := range rows {
		if !include(rec) {
			continue
		}
		counts[cell{rec.AgeGroup, NormalizeGroupKey(rec.Gender)}]++
	}

	out := make([]CrossTab, 0, len(counts))
	for key, count := range counts {
		out = append(out, CrossTab{AgeGroup: key.group, Gender: key.gender, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AgeGroup != out[j].AgeGroup {
			return ageGroupOrder[out[i].AgeGroup] < ageGroupOrder[out[j].AgeGroup]
		}
		return out[i].Gender < out[j].Gender
	})
	return out
}

// CountByLocation counts records per location, most frequent first. Empty
// locations form their own group rather than being dropped.
func CountByLocation(rows []records.Record) []KeyCount {
	counts := make(map[string]int)
	for _, rec := range rows {
		counts[rec.Location]++
	}

	out := make([]KeyCount, 0, len(counts))
	for key, count := range counts {
		out = append(out, KeyCount{Key: key, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// CountByLocationGender counts records per (location, gender).
func CountByLocationGender(rows []records.Record) []PairCount {
	return pairCounts(rows, func(r records.Record) string { return r.Gender })
}

// CountByLocationAgeGroup counts records per (location, age group).
func CountByLocationAgeGroup(rows []records.Record) []PairCount {
	return pairCounts(rows, func(r records.Record) string { return string(r.AgeGroup) })
}

// CountByLocationDisability counts records per (location, disability status).
func CountByLocationDisability(rows []records.Record) []PairCount {
	return pairCounts(rows, func(r records.Record) string { return string(r.DisabilityStatus) })
}

func pairCounts(rows []records.Record, key func(records.Record) string) []PairCount {
	type pair struct{ location, key string }
	counts := make(map[pair]int)
	for _, rec := range rows {
		counts[pair{rec.Location, key(rec)}]++
	}

	out := make([]PairCount, 0, len(counts))
	for k, count := range counts {
		out = append(out, PairCount{Location: k.location, Key: k.key, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].Key < out[j].Key
	})
	return out
}
