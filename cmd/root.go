package cmd

import (
	"os"

	"github.com/capDAOIZ/api-mario/configs"
	"github.com/capDAOIZ/api-mario/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "api-mario",
	Short:         "Dish catalogue HTTP API",
	SilenceUsage:  true,
	SilenceErrors: true,
	// no subcommand means serve
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		zap.L().Error("command failed", zap.Error(err))
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// bootstrap loads config, the logger and the database shared by every command.
func bootstrap() (*configs.Config, *zap.Logger, *gorm.DB, error) {
	cfg := configs.LoadConfig()
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	zap.ReplaceGlobals(log)

	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}
