package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rate-normalizer/service"
)

func termsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "List the industry-standard terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, term := range service.StandardTerms() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", term)
			}
			return nil
		},
	}
}
