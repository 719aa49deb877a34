package cmd

import (
	"dialeradmin/config"
	logger "dialeradmin/log"

	"github.com/spf13/cobra"
)

// logger and configuration
var (
	conf = config.GetConfig()
	log  = logger.GetLogger()
)

var rootCmd = &cobra.Command{
	Use:   "dialeradmin",
	Short: "Back office of the VoIP dialer",
	Long:  `dialeradmin serves the admin screens of the dialer: call requests, the VoIP call report and its CSV export.`,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
