package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rate-normalizer/domain"
)

func normalizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Normalize a JSON array of rate records",
		Long: "Read a JSON array of rate records from a file (or stdin when no file\n" +
			"is given) and print the normalized records together with the ones\n" +
			"that were rejected.\n\n" +
			"Each record needs either termMonths or termMin/termMax.\n\n" +
			"Examples:\n" +
			"  ratenorm normalize rates.json\n" +
			"  cat rates.json | ratenorm normalize --strict",
		Args: cobra.MaximumNArgs(1),
		RunE: runNormalize,
	}

	cmd.Flags().Bool("strict", false, "Fail when any record is rejected")
	cmd.Flags().Bool("compact", false, "Print compact JSON instead of indented")

	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	compact, _ := cmd.Flags().GetBool("compact")

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	records, err := decodeRecords(in)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	result := a.service.NormalizeBatch(records)

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if strict && len(result.Rejected) > 0 {
		return fmt.Errorf("%d of %d records rejected", len(result.Rejected), len(records))
	}
	return nil
}

func decodeRecords(r io.Reader) ([]domain.RateRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []domain.RateRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("invalid input, expected a JSON array of records: %w", err)
	}
	return records, nil
}
