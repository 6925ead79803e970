package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/workopia/internal/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	load := func() (config.Config, error) {
		return config.Load(envFiles...)
	}

	root := &cobra.Command{
		Use:           "workopia",
		Short:         "Workopia job listings site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(newServeCmd(load), newMigrateCmd(load))
	return root
}
