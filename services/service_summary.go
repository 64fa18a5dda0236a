package services

import (
	"strconv"
	"strings"

	"boothtrack/dto"
	"boothtrack/model"
)

// TimeSlotMinutes converts a reporting slot like "9:30AM" or "1:30PM"
// to minutes since midnight for ordering. Malformed slots order first.
func TimeSlotMinutes(slot string) int {
	slot = strings.ToUpper(strings.TrimSpace(slot))

	period := ""
	switch {
	case strings.HasSuffix(slot, "AM"):
		period = "AM"
	case strings.HasSuffix(slot, "PM"):
		period = "PM"
	default:
		return -1
	}
	slot = strings.TrimSuffix(slot, period)

	parts := strings.SplitN(slot, ":", 2)
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return -1
	}
	minutes := 0
	if len(parts) == 2 {
		if minutes, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return -1
		}
	}
	if period == "PM" && hours != 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}
	return hours*60 + minutes
}

// LatestPerBooth keeps only each booth's chronologically latest report.
func LatestPerBooth(results []model.BoothResult) map[string]model.BoothResult {
	latest := make(map[string]model.BoothResult)
	for _, r := range results {
		prev, ok := latest[r.Booth]
		if !ok || TimeSlotMinutes(r.TimeSlot) > TimeSlotMinutes(prev.TimeSlot) {
			latest[r.Booth] = r
		}
	}
	return latest
}

// SummarizeConstituency rolls up the latest report of every booth.
// Vote fields are numeric strings; unparsable values count as zero.
func SummarizeConstituency(results []model.BoothResult) dto.BoothSummary {
	var s dto.BoothSummary
	for _, r := range LatestPerBooth(results) {
		s.TotalVotes += atoiOrZero(r.TotalVotes)
		s.PolledVotes += atoiOrZero(r.PolledVotes)
		s.FavVotes += atoiOrZero(r.FavVotes)
		s.UbtVotes += atoiOrZero(r.UbtVotes)
		s.OtherVotes += atoiOrZero(r.OtherVotes)
	}
	return s
}

// BoothStatus flags each rostered booth as reported (1) or missing (0)
// against the set of booths that have result records.
func BoothStatus(rosterBooths []string, reported []model.BoothResult) ([]dto.BoothFlag, []dto.BoothFlag) {
	have := make(map[string]struct{}, len(reported))
	for _, r := range reported {
		have[r.Booth] = struct{}{}
	}

	flags := make([]dto.BoothFlag, 0, len(rosterBooths))
	var missing []dto.BoothFlag
	for _, b := range rosterBooths {
		f := dto.BoothFlag{BoothName: b}
		if _, ok := have[b]; ok {
			f.Status = 1
		} else {
			missing = append(missing, f)
		}
		flags = append(flags, f)
	}
	return flags, missing
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
