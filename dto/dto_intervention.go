package dto

type InterventionResponse struct {
	ID                          string `json:"_id"`
	PC                          string `json:"pc"`
	Constituency                string `json:"constituency"`
	Ward                        string `json:"ward"`
	Booth                       string `json:"booth"`
	InterventionType            string `json:"interventionType"`
	InterventionIssues          string `json:"interventionIssues"`
	InterventionIssueBrief      string `json:"interventionIssueBrief"`
	InterventionContactFollowUp string `json:"interventionContactFollowUp"`
	InterventionAction          string `json:"interventionAction"`
}

// InterventionCounts always carries the three type keys and the three
// action keys, zero-filled, so dashboards never branch on missing keys.
type InterventionCounts struct {
	TotalInterventions int            `json:"totalInterventions"`
	TypeCounts         map[string]int `json:"typeCounts"`
	ActionCounts       map[string]int `json:"actionCounts"`
}

type UpdateInterventionActionRequest struct {
	InterventionAction string `json:"interventionAction"`
}
