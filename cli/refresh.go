package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one feed ingestion cycle and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		count, err := app.ingest.Refresh(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%d notícias coletadas\n", count)
		return nil
	},
}
