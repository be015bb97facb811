package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var sourceFlags []string
	var destFlag string

	ctx := newCommandContext(&configFlag, &sourceFlags, &destFlag)

	rootCmd := &cobra.Command{
		Use:           "reelsort",
		Short:         "Organize downloaded movies and series into a media library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringArrayVar(&sourceFlags, "source", nil, "Source directory to scan (repeatable, overrides config)")
	rootCmd.PersistentFlags().StringVar(&destFlag, "dest", "", "Destination library root (overrides config)")

	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newApplyCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
