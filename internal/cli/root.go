package cli

import (
	"context"
	"database/sql"
	"fmt"

	"shelter-adoptions/internal/adapters/storage/sqlstore"
	"shelter-adoptions/internal/config"
	"shelter-adoptions/internal/platform/logger"

	"github.com/spf13/cobra"
)

// NewRootCmd arma el CLI. Sin subcomando, corre serve.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "shelter",
		Short: "API de adopciones del refugio",
		Long: `shelter expone la API HTTP de animales, adotantes, atendentes y adocoes.

Examples:

  shelter serve
  shelter migrate
  shelter migrate --status
`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $CONFIG_FILE)")

	serve := newServeCmd(&configPath)
	root.RunE = serve.RunE
	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd(&configPath))
	return root
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
}

// openDB abre la DB configurada y aplica el schema si corresponde.
func openDB(ctx context.Context, cfg config.Config, migrate bool) (*sql.DB, sqlstore.Driver, error) {
	driver, err := sqlstore.ParseDriver(cfg.DB.Driver)
	if err != nil {
		return nil, "", err
	}
	db, err := sqlstore.Open(ctx, driver, cfg.DB.DSN)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", driver, err)
	}
	if migrate {
		if err := sqlstore.Migrate(ctx, db, driver); err != nil {
			_ = db.Close()
			return nil, "", err
		}
	}
	return db, driver, nil
}
