package main

import (
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default command)",
		RunE:  a.runServe,
	}
	cmd.Flags().String("port", "", "port to listen on (env PORT)")
	cmd.Flags().String("static-dir", "", "directory with the browser client (env STATIC_DIR)")
	_ = a.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = a.v.BindPFlag("static_dir", cmd.Flags().Lookup("static-dir"))
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a.logger.Info("finance-tracker starting")

	store, err := a.openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	delegator := operator.NewOperatorDelegator(store, a.env, a.logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(store, delegator)
	if err := svc.Category.SeedCategories(ctx, a.env.DefaultCategories); err != nil {
		return err
	}

	httpRest := api.Rest{
		Logger:    a.logger,
		Port:      a.env.Port,
		StaticDir: a.env.StaticDir,
		Service:   svc,
		Storage:   store,
	}
	return httpRest.Serve(ctx)
}
