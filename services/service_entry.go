package services

import (
	"fmt"

	"boothtrack/dto"
	"boothtrack/model"
)

// CheckEntry decides whether a new (booth, timeSlot, polledVotes)
// report may be recorded: a slot may not be reported twice, and polled
// votes may never decrease against the booth's latest earlier slot.
func CheckEntry(existing *model.BoothResult, previous []model.BoothResult, timeSlot string, polledVotes int) dto.CheckEntryResponse {
	if existing != nil {
		return dto.CheckEntryResponse{Exists: true}
	}

	var latest *model.BoothResult
	for i := range previous {
		r := &previous[i]
		if TimeSlotMinutes(r.TimeSlot) >= TimeSlotMinutes(timeSlot) {
			continue
		}
		if latest == nil || TimeSlotMinutes(r.TimeSlot) > TimeSlotMinutes(latest.TimeSlot) {
			latest = r
		}
	}
	if latest != nil {
		prev := atoiOrZero(latest.PolledVotes)
		if polledVotes < prev {
			return dto.CheckEntryResponse{
				Exists:  false,
				Message: fmt.Sprintf("New polled votes must be greater than or equal to the latest value of %d.", prev),
			}
		}
	}
	return dto.CheckEntryResponse{Exists: false}
}
