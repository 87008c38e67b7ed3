// Package cmd implements the ctas CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/coastalops/ctas/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "ctas",
		Short: "Coastal threat alert system",
		Long: "ctas monitors coastal monitoring stations for tide, storm, wave, and\n" +
			"flood threats, raises geo-targeted alerts, and delivers notifications\n" +
			"over email, SMS, and push. It runs the API server and scheduler, and\n" +
			"doubles as a command-line client for a running server.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(stationsCmd())
	rootCmd.AddCommand(alertsCmd())
	rootCmd.AddCommand(subscriptionsCmd())
	rootCmd.AddCommand(collectCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(jobsCmd())
	rootCmd.AddCommand(stateCmd())
}

func initConfig() {
	viper.SetEnvPrefix("CTAS")
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
