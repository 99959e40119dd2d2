// status.go - Local session inspection
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the local session state (no network call)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := setup()
			if err != nil {
				return err
			}

			fmt.Printf("Backend: %s\n", cfg.API.BaseURL)

			store := c.Session()
			if !store.Authenticated() {
				fmt.Println("Session: signed out")
				return nil
			}

			// The token may have been revoked server-side; only the
			// next API call would reveal that.
			if user, ok := store.User(); ok {
				fmt.Printf("Session: signed in as %s <%s>\n", user.FullName, user.Email)
			} else {
				fmt.Println("Session: signed in (no cached profile)")
			}
			return nil
		},
	}
}
