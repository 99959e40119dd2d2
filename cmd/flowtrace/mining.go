// mining.go - Process-mining report commands
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCaseRootsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "case-roots",
		Short: "Show the backend-computed case-root report",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := setup()
			if err != nil {
				return err
			}
			if err := requireLogin(c); err != nil {
				return err
			}

			report, err := c.FetchCaseRoots(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%-20s %-20s %10s %10s\n", "ROOT TABLE", "PRIMARY KEY", "CASES", "SHARE")
			for _, root := range report.CaseRoots {
				fmt.Printf("%-20s %-20s %10d %9.1f%%\n",
					root.RootTable, root.RootPrimaryKey, root.CaseCount, root.Percentage)
			}
			fmt.Printf("\nTotal cases: %d\n", report.TotalCases)
			return nil
		},
	}
}
