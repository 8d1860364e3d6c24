package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-tracker/internal/importer"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
)

func (a *app) importCmd() *cobra.Command {
	var (
		category string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV or OFX/QFX file",
		Long: `Import reads a CSV export (date,merchant,amount,category header) or an
OFX/QFX bank statement and stores every row in one transaction: either the
whole file is imported or nothing is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			creates, err := importer.ParseFile(ctx, path, importer.Options{DefaultCategory: category})
			if err != nil {
				return err
			}
			a.logger.WithField("file", path).WithField("rows", len(creates)).Info("Import.Parsed")

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "parsed %d transactions from %s (dry run, nothing written)\n", len(creates), path)
				return nil
			}

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

			inserted, err := svc.Transaction.BulkCreateTransactions(ctx, creates)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d transactions from %s\n", inserted, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "Miscellaneous", "category for rows that do not carry one")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse the file without writing anything")
	return cmd
}
