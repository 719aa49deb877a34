package cmd

import (
	"fmt"
	"time"

	"dialeradmin/data"
	"dialeradmin/models"
	"dialeradmin/security"

	"github.com/spf13/cobra"
)

var superuser struct {
	username string
	password string
}

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create an admin account with every permission",
	RunE: func(cmd *cobra.Command, args []string) error {

		if superuser.username == "" {
			return fmt.Errorf("--username is required")
		}

		hash, err := security.Hash(superuser.password)
		if err != nil {
			return err
		}

		db := data.GetDB()
		if db == nil {
			return fmt.Errorf("database unavailable")
		}
		defer db.Close()

		user := models.User{
			Username:    superuser.username,
			Password:    hash,
			IsStaff:     true,
			IsSuperuser: true,
			IsActive:    true,
			DateJoined:  time.Now(),
		}

		if err = db.Create(&user).Error; err != nil {
			return fmt.Errorf("cannot create user %s: %w", superuser.username, err)
		}

		log.Infof("superuser %s created", user.Username)

		return nil
	},
}

func init() {
	createSuperuserCmd.Flags().StringVarP(&superuser.username, "username", "u", "", "login name")
	createSuperuserCmd.Flags().StringVarP(&superuser.password, "password", "p", "", "password, at least 8 characters")
	rootCmd.AddCommand(createSuperuserCmd)
}
