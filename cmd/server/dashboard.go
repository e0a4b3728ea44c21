package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"compliancedesk/internal/report"
)

func newDashboardCmd(root *rootOptions) *cobra.Command {
	var (
		at  string
		pdf string
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print dashboard counts, optionally rendering them to PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := parseAt(at)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), root.cfg, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			d, err := a.records.Dashboard(cmd.Context(), ref)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(d.Metrics); err != nil {
				return err
			}

			if pdf == "" {
				return nil
			}
			body, err := report.DashboardPDF(d)
			if err != nil {
				return err
			}
			if err := os.WriteFile(pdf, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", pdf, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", pdf)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "reference date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&pdf, "pdf", "", "also render the dashboard to this PDF file")
	return cmd
}
