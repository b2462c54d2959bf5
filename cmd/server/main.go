package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/sendikahq/sendika/internal/server"
	"github.com/sendikahq/sendika/migrations"
	"github.com/sendikahq/sendika/pkg/configuration"
)

func main() {
	root := &cobra.Command{
		Use:           "sendika",
		Short:         "Union membership platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configuration.Use()
			logger := conf.Logger()

			pool, err := pgxpool.New(cmd.Context(), conf.Database.ConnectionString())
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			srv := server.Default(&server.DefaultOptions{
				Logger:        logger,
				Configuration: conf,
				Pool:          pool,
			})

			logger.WithField("address", conf.Address).Info("starting server")
			return srv.Start(conf.Address)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configuration.Use()

			db, err := sql.Open("pgx", conf.Database.ConnectionString())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			goose.SetBaseFS(migrations.FS)
			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}
			return goose.UpContext(context.Background(), db, ".")
		},
	}
}
