package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talentlink/marketplace/internal/config"
	"github.com/talentlink/marketplace/internal/store"
	"github.com/talentlink/marketplace/pkg/log"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
		defer func() { _ = logger.Sync() }()
		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Fatalw("initializing data store", "error", err)
		}

		store := store.NewStore(db)
		defer store.Close()

		if err := store.InitialMigration(); err != nil {
			zap.S().Fatalw("running initial migration", "error", err)
		}
		zap.S().Info("Db migrated")

		return nil
	},
}
