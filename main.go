package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	env     *config.Config
	logger  *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:               "finance-tracker",
		Short:             "Personal finance tracker backed by a single SQLite file",
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runServe,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String("database", "", "path to the SQLite database file (env DATABASE_PATH)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (env LOG_LEVEL)")
	_ = a.v.BindPFlag("database_path", flags.Lookup("database"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(a.serveCmd())
	rootCmd.AddCommand(a.migrateCmd())
	rootCmd.AddCommand(a.importCmd())

	return rootCmd
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	}

	env, err := config.ProcessEnvironmentVariables(a.v)
	if err != nil {
		return err
	}
	a.env = env
	a.logger = logging.SetupLoggingWithLevel(env.LogLevel)
	return nil
}

// openStorage opens the database and brings its schema up to date.
func (a *app) openStorage() (*storage.Storage, error) {
	store, err := storage.NewStorage(a.env)
	if err != nil {
		return nil, err
	}

	result, err := store.Migrate()
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a.logger.WithFields(logrus.Fields{
		"database":             a.env.DatabasePath,
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")

	return store, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		logrus.WithError(err).Error("finance-tracker exited")
		os.Exit(1)
	}
}
