package dto

// BoothSummary is the latest-slot-per-booth rollup for one constituency.
type BoothSummary struct {
	TotalVotes  int `json:"totalVotes"`
	PolledVotes int `json:"polledVotes"`
	FavVotes    int `json:"favVotes"`
	UbtVotes    int `json:"ubtVotes"`
	OtherVotes  int `json:"otherVotes"`
}

type SummaryResponse struct {
	Success      bool         `json:"success"`
	Constituency string       `json:"constituency"`
	Summary      BoothSummary `json:"summary"`
}

type BoothFlag struct {
	BoothName string `json:"boothName"`
	Status    int    `json:"status"` // 1 reported, 0 missing
}

type BoothStatusResponse struct {
	TotalBooths       int         `json:"totalBooths"`
	MissingBoothCount int         `json:"missingBoothCount"`
	BoothStatus       []BoothFlag `json:"boothStatus"`
	NoDataBooths      []BoothFlag `json:"noDataBooths,omitempty"`
}

type TotalCountResponse struct {
	TotalCount int `json:"totalCount"`
}

type CheckEntryResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message,omitempty"`
}
