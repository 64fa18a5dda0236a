package services

import (
	"boothtrack/dto"
	"boothtrack/model"
)

var (
	interventionTypes = []string{
		model.InterventionTypeAdministrative,
		model.InterventionTypePolitical,
		model.InterventionTypePolice,
	}
	interventionActions = []string{
		model.InterventionActionSolved,
		model.InterventionActionNotSolved,
		model.InterventionActionActionTaken,
	}
)

// EmptyInterventionCounts is the counts shape for an empty scope:
// every known key present, everything zero.
func EmptyInterventionCounts() dto.InterventionCounts {
	return ShapeInterventionCounts(0, nil, nil)
}

// ShapeInterventionCounts zero-fills the known type and action keys
// over raw group results. Unknown free-text values are dropped from
// the shaped payload, matching the dashboard's fixed key set.
func ShapeInterventionCounts(total int, byType, byAction map[string]int) dto.InterventionCounts {
	out := dto.InterventionCounts{
		TotalInterventions: total,
		TypeCounts:         make(map[string]int, len(interventionTypes)),
		ActionCounts:       make(map[string]int, len(interventionActions)),
	}
	for _, k := range interventionTypes {
		out.TypeCounts[k] = byType[k]
	}
	for _, k := range interventionActions {
		out.ActionCounts[k] = byAction[k]
	}
	return out
}
