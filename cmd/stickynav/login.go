package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/depeter/stickynav/internal/jellyfin"
	"github.com/depeter/stickynav/internal/logging"
)

var (
	loginServer   string
	loginUser     string
	loginPassword string
	loginLibrary  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to a Jellyfin server and save the token",
	Long: `Authenticate against a Jellyfin server. The access token and user ID are
written to the config file so "run" can show the library under the header.

The password can also be passed in STICKYNAV_PASSWORD.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := loginServer
		if server == "" {
			server = cfg.Server.URL
		}
		user := loginUser
		if user == "" {
			user = cfg.Server.Username
		}
		password := loginPassword
		if password == "" {
			password = os.Getenv("STICKYNAV_PASSWORD")
		}
		if server == "" || user == "" {
			return fmt.Errorf("--server and --user are required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		client := jellyfin.NewClient(server)
		if err := client.Authenticate(ctx, user, password); err != nil {
			return err
		}

		cfg.Server.URL = client.ServerURL()
		cfg.Server.Username = user
		cfg.Server.Token = client.Token()
		cfg.Server.UserID = client.UserID()
		if cmd.Flags().Changed("library") {
			cfg.Server.Library = loginLibrary
		}
		if err := saveConfig(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		logging.Logger.Info("logged in", "server", cfg.Server.URL, "user", user)
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s, saved to %s\n", user, configPath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(loginCmd)
	f := loginCmd.Flags()
	f.StringVar(&loginServer, "server", "", "server URL (default from config)")
	f.StringVar(&loginUser, "user", "", "user name (default from config)")
	f.StringVar(&loginPassword, "password", "", "password")
	f.StringVar(&loginLibrary, "library", "", "library view shown under the header")
}
