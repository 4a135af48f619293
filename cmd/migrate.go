package cmd

import (
	"github.com/capDAOIZ/api-mario/configs"
	"github.com/spf13/cobra"
)

var rollback bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if rollback {
			if err := configs.RollbackLast(db); err != nil {
				return err
			}
			log.Info("last migration rolled back")
			return nil
		}
		if err := configs.SetupDatabase(db); err != nil {
			return err
		}
		log.Info("migrations applied")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&rollback, "rollback", false, "undo the last migration")
}
