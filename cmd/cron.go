package cmd

import (
	"fmt"

	"dialeradmin/data"
	"dialeradmin/jobs"

	"github.com/jasonlvhit/gocron"
	"github.com/spf13/cobra"
)

var cronCmd = &cobra.Command{
	Use:     "cron",
	Aliases: []string{"jobs", "c"},
	Short:   "Run background tasks e.g purging expired admin tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTasks()
	},
}

func init() {
	rootCmd.AddCommand(cronCmd)
}

// do the thing
func runTasks() error {

	log.Infof("Starting background jobs....")

	db := data.GetDB()
	if db == nil {
		return fmt.Errorf("database unavailable")
	}

	var cjob = jobs.NewCronJob(db, log)

	if err := gocron.Every(1).Minute().Do(cjob.PurgeTokens); err != nil {
		return fmt.Errorf("cannot prepare purge tokens job : %w", err)
	}

	if err := gocron.Every(1).Day().At("00:05").Do(cjob.DailyReport); err != nil {
		return fmt.Errorf("cannot prepare daily report job : %w", err)
	}

	//run scheduler
	<-gocron.Start()

	return nil
}
