package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/codeformat/internal/heading"
	"github.com/spf13/cobra"
)

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels [file]",
		Short: "Resolve levels for pre-extracted marker tokens",
		Long: `Read a JSON array of token lists, one list per paragraph, and print the
resolved level of each paragraph as a JSON array.

Example:
  echo '[["a"],["1"],["A"],["i"],["ii"]]' | codeformat levels
  [1,2,3,4,4]`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if len(args) > 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			levels, err := resolveLevels(in)
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(levels)
		},
	}
}

func resolveLevels(r io.Reader) ([]int, error) {
	var paragraphs [][]string
	if err := json.NewDecoder(r).Decode(&paragraphs); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid token lists: %w", err)
	}
	return heading.Resolve(paragraphs), nil
}
