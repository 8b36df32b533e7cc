package cli

import (
	"errors"
	"fmt"
	"sort"

	"shelter-adoptions/internal/adapters/storage/sqlstore"
	"shelter-adoptions/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema on the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.UsesMemory() {
				return errors.New("db driver is memory: nothing to migrate (set DB_DRIVER and DB_DSN)")
			}

			ctx := cmd.Context()
			db, driver, err := openDB(ctx, cfg, !statusOnly)
			if err != nil {
				color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), "migration failed:", err)
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			if !statusOnly {
				color.New(color.FgGreen).Fprintf(out, "schema up to date (%s)\n", driver)
			}

			counts, err := sqlstore.Counts(ctx, db)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(counts))
			for t := range counts {
				names = append(names, t)
			}
			sort.Strings(names)
			for _, t := range names {
				fmt.Fprintf(out, "  %-14s %s\n", t, color.CyanString("%d rows", counts[t]))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "Only print row counts, do not create tables")
	return cmd
}
