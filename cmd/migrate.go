package cmd

import (
	"fmt"

	"dialeradmin/data"
	"dialeradmin/models"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the tables this service uses",
	RunE: func(cmd *cobra.Command, args []string) error {

		db := data.GetDB()
		if db == nil {
			return fmt.Errorf("database unavailable")
		}
		defer db.Close()

		if err := db.AutoMigrate(models.All()...).Error; err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		log.Infof("migrated %d tables", len(models.All()))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
