package cli

import (
	"boardcamp/config"

	"github.com/spf13/cobra"
)

// migrateCmd applies the schema of the configured store
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create or update the database schema of the configured store.

PostgreSQL gets the embedded schema.sql (idempotent); SQLite is auto-migrated
from the record definitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.close()

		if err := st.migrate(cmd.Context()); err != nil {
			return err
		}
		log.Info("schema migrated", "driver", cfg.StoreDriver)
		return nil
	},
}
