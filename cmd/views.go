package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "Record one portfolio visit and print the view count",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			st, closeStore, err := openStore(ctx, conf)
			if err != nil {
				return err
			}
			defer closeStore()

			count, err := newViewCounter(conf, st).Hit(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s views (%s)\n", count.Display, count.Source)
			return nil
		},
	}
}
