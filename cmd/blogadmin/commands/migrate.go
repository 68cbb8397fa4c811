package commands

import (
	"github.com/spf13/cobra"

	"github.com/daniilsolovey/blogicum/internal/db"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Database migration commands",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sqldb, err := db.OpenSQL(&rt.cfg.Database)
				if err != nil {
					return err
				}
				defer sqldb.Close()

				if err := db.Migrate(cmd.Context(), sqldb); err != nil {
					return err
				}

				rt.logger.Info("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the state of every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sqldb, err := db.OpenSQL(&rt.cfg.Database)
				if err != nil {
					return err
				}
				defer sqldb.Close()

				return db.MigrationStatus(cmd.Context(), sqldb)
			},
		},
	)

	return cmd
}
