package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rate-normalizer/domain"
)

func infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <term>...",
		Short: "Show how terms map to standard terms",
		Long: "Print the normalized term and the distance for each term in months.\n\n" +
			"Examples:\n" +
			"  ratenorm info 48 66 75 84\n" +
			"  ratenorm info --json 66",
		Args: cobra.MinimumNArgs(1),
		RunE: runInfo,
	}

	cmd.Flags().Bool("json", false, "Print JSON instead of text")

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	terms := make([]int, 0, len(args))
	for _, arg := range args {
		term, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid term %q: must be a whole number of months", arg)
		}
		terms = append(terms, term)
	}

	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	infos := make([]domain.NormalizationInfo, 0, len(terms))
	for _, term := range terms {
		info, err := a.service.TermInfo(cmd.Context(), term)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(out, "%d months -> %d months (distance: %d)\n", info.Original, info.Normalized, info.Distance)
	}
	return nil
}
