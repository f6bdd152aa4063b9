package main

import (
	"github.com/muhammadchandra19/limit-orderbook/pkg/config"
	"github.com/spf13/cobra"
)

func newShowCmd(cfg *config.Config, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print a freshly seeded book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, book, publisher, err := bootstrap(cfg, flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return publisher.RenderBook(book)
		},
	}
}
