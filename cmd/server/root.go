package main

import (
	"github.com/spf13/cobra"

	"compliancedesk/internal/platform/config"
)

type rootOptions struct {
	configFile string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "compliancedesk",
		Short:         "Record keeper for statutory documents, legal notices and the inward register",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file (COMPLIANCE_* env vars override it)")

	cmd.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newDashboardCmd(opts),
		newValidateCmd(opts),
	)
	return cmd
}
