package main

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"plyquote/collections"
	"plyquote/services"
)

// newRatesCommand adds `rates show` and `rates reset` for maintaining the
// stored rate table without the HTTP API.
func newRatesCommand(app core.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show or reset the plywood rate table",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the rate table in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openRateStore(app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), services.FormatRateTable(store.Refresh()))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Replace the stored rate table with the default rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openRateStore(app)
			if err != nil {
				return err
			}
			if err := store.Replace(services.DefaultRateTable()); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), services.FormatRateTable(store.Book().Current()))
			return nil
		},
	})

	return cmd
}

func openRateStore(app core.App) (*services.RateStore, error) {
	if !app.IsBootstrapped() {
		if err := app.Bootstrap(); err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
	}
	if err := collections.Setup(app); err != nil {
		return nil, err
	}
	return services.NewRateStore(app, services.NewRateBook(nil)), nil
}
