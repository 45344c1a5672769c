package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "guild-service"

var configPath string

// rootCmd runs the API server when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "guild",
	Short: "Guild boss score service",
	Long: `guild serves the guild API: Discord OTP login, boss score submission
and the roster, score and attack order views.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".env", "Path to the dotenv file loaded when APP_ENV=local")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
