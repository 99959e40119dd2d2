package models

// CaseRoot is a backend-identified entry point (table + primary key)
// from which a process instance is considered to originate.
type CaseRoot struct {
	RootTable      string  `json:"root_table"`
	RootPrimaryKey string  `json:"root_primary_key"`
	CaseCount      int     `json:"case_count"`
	Percentage     float64 `json:"percentage"`
}

// CaseRootsResponse is the body of GET /process-mining/case-roots.
type CaseRootsResponse struct {
	CaseRoots  []CaseRoot `json:"case_roots"`
	TotalCases int        `json:"total_cases"`
}
