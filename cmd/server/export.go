package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"compliancedesk/internal/report"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		out string
		at  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the three registers to an XLSX workbook",
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

			snap, err := a.records.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			body, err := report.Workbook(snap, ref)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d documents, %d notices, %d inward entries)\n",
				out, len(snap.Documents), len(snap.Notices), len(snap.Inward))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "compliance-registers.xlsx", "output file")
	cmd.Flags().StringVar(&at, "at", "", "reference date for derived columns (YYYY-MM-DD, default today)")
	return cmd
}

// parseAt reads a --at flag; empty means now.
func parseAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at must be YYYY-MM-DD or RFC 3339, got %q", raw)
	}
	return t, nil
}
