// datasource.go - CSV datasource commands
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowtrace/flowtrace/internal/client"
)

func newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload CSV datasources, one request per file",
		Long: "Uploads each file in order, stopping at the first failure.\n" +
			"Files uploaded before the failure stay registered on the backend.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := setup()
			if err != nil {
				return err
			}
			if err := requireLogin(c); err != nil {
				return err
			}

			results, err := c.UploadCSV(cmd.Context(), args)

			for _, res := range results {
				fmt.Printf("  uploaded %-30s %s (%d columns, %d rows)\n",
					res.FileName, res.ID, res.Columns, res.Rows)
			}

			if err != nil {
				var uploadErr *client.UploadError
				if errors.As(err, &uploadErr) && len(results) > 0 {
					return fmt.Errorf("%w (%d of %d files were uploaded before the failure)",
						uploadErr, len(results), len(args))
				}
				return err
			}

			fmt.Printf("Uploaded %d datasource(s)\n", len(results))
			return nil
		},
	}
}
