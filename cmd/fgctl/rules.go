package main

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sirkon/fieldguard/internal/rules"
)

func newRulesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List supported rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.engine()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(e.Rules())
			}

			renderRules(cmd.OutOrStdout(), e.Rules())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print rules as JSON")

	return cmd
}

func renderRules(w io.Writer, infos []rules.Info) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Marker", "Policy", "Severity", "Enabled", "Title"})

	for _, info := range infos {
		t.AppendRow(table.Row{info.ID, info.Marker, info.Policy, info.Severity, info.Enabled, info.Title})
	}
	t.Render()
}
