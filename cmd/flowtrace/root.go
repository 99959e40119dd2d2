// root.go - CLI entry point and shared wiring
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowtrace/flowtrace/internal/client"
	"github.com/flowtrace/flowtrace/internal/config"
	"github.com/flowtrace/flowtrace/internal/guard"
	"github.com/flowtrace/flowtrace/internal/session"
)

var cfgFile string

// Execute builds the command tree and runs it.
func Execute(version, buildTime string) {
	rootCmd := &cobra.Command{
		Use:   "flowtrace",
		Short: "Flowtrace process-mining client",
		Long: "flowtrace talks to a Flowtrace backend: sign in, upload CSV\n" +
			"datasources, and read process-mining reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file path (default ~/.config/flowtrace/config.yaml)")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newSignUpCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newForgotPasswordCmd())
	rootCmd.AddCommand(newResetPasswordCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newCaseRootsCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newVersionCmd(version, buildTime))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config and builds the client with a durable session.
func setup() (*client.Client, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, nil, err
	}

	store, err := session.NewFileStore(cfg.Session.Dir)
	if err != nil {
		return nil, nil, err
	}

	hc := &http.Client{
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}

	return client.NewWithHTTPClient(cfg.API.BaseURL, store, hc), cfg, nil
}

// requireLogin gates a protected command the way the web app gates a
// protected route: resolve once against the stored session, bounce to
// the login entry point if it is absent.
func requireLogin(c *client.Client) error {
	if !guard.New(c.Session()).Admit() {
		return fmt.Errorf("not signed in; run 'flowtrace login' first")
	}
	return nil
}

func newVersionCmd(version, buildTime string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("flowtrace %s (built %s)\n", version, buildTime)
		},
	}
}
