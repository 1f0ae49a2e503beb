package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subtag/internal/stylesheet"
)

func newStylesheetCommand(ctx *commandContext) *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:   "stylesheet",
		Short: "Print the style rules stored by previous compilations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.Stylesheet.StorePath) == "" {
				return fmt.Errorf("stylesheet.store_path is not configured")
			}

			store, err := stylesheet.OpenStore(cmd.Context(), cfg.Stylesheet.StorePath)
			if err != nil {
				return err
			}
			defer store.Close()

			rules, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rules) == 0 {
				fmt.Fprintf(out, "No style rules stored in %s\n", store.Path())
				return nil
			}
			if asTable {
				rows := make([][]string, 0, len(rules))
				for _, rule := range rules {
					rows = append(rows, []string{rule.Class, rule.Text})
				}
				fmt.Fprintln(out, renderTable([]string{"Class", "Rule"}, rows, nil))
				return nil
			}
			registry := stylesheet.NewRegistry()
			registry.Seed(rules)
			_, err = registry.WriteTo(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "Render rules as a table instead of CSS")
	return cmd
}
