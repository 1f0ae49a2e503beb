package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subtag/internal/tags"
)

func newCatalogCommand() *cobra.Command {
	var supportedOnly, unsupportedOnly bool

	cmd := &cobra.Command{
		Use:         "catalog",
		Short:       "List the override tags the compiler recognises",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if supportedOnly && unsupportedOnly {
				return fmt.Errorf("--supported and --unsupported are mutually exclusive")
			}
			signatures := tags.All()
			switch {
			case supportedOnly:
				signatures = tags.Supported()
			case unsupportedOnly:
				signatures = tags.Unsupported()
			}

			rows := make([][]string, 0, len(signatures))
			for _, sig := range signatures {
				rows = append(rows, []string{sig.Name, string(sig.Category), yesNo(sig.Supported), sig.Example})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tag", "Category", "Rendered", "Example"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&supportedOnly, "supported", false, "Only list tags that are rendered")
	cmd.Flags().BoolVar(&unsupportedOnly, "unsupported", false, "Only list tags that are stripped")
	return cmd
}
