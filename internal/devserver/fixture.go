// fixture.go - Deterministic sample data for the process-mining report
package devserver

import "github.com/flowtrace/flowtrace/internal/models"

// fixtureRoot is one hard-coded discovery result.
type fixtureRoot struct {
	Table      string
	PrimaryKey string
	Cases      int
}

var defaultRoots = []fixtureRoot{
	{Table: "orders", PrimaryKey: "order_id", Cases: 1480},
	{Table: "deliveries", PrimaryKey: "delivery_id", Cases: 960},
	{Table: "invoices", PrimaryKey: "invoice_id", Cases: 512},
	{Table: "returns", PrimaryKey: "return_id", Cases: 48},
}

// FixtureCaseRoots builds the sample case-root report the stub serves.
// Percentages are derived from the counts so the report is internally
// consistent.
func FixtureCaseRoots() models.CaseRootsResponse {
	total := 0
	for _, r := range defaultRoots {
		total += r.Cases
	}

	roots := make([]models.CaseRoot, 0, len(defaultRoots))
	for _, r := range defaultRoots {
		roots = append(roots, models.CaseRoot{
			RootTable:      r.Table,
			RootPrimaryKey: r.PrimaryKey,
			CaseCount:      r.Cases,
			Percentage:     float64(r.Cases) * 100 / float64(total),
		})
	}

	return models.CaseRootsResponse{
		CaseRoots:  roots,
		TotalCases: total,
	}
}
