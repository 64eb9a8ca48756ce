package main

import (
	"github.com/spf13/cobra"

	"github.com/inodb/pdctag/internal/genome"
	"github.com/inodb/pdctag/internal/output"
)

func newTableCmd() *cobra.Command {
	var (
		index bool
		genes []string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the mutation table as tab-delimited text",
		Example: `  pdctag table
  pdctag table --index
  pdctag table --gene SNCA --gene GBA`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := genome.Generate()
			records := t.Records()
			if len(genes) > 0 {
				records = t.FilterGenes(genes...)
			}

			w := output.NewTabWriter(cmd.OutOrStdout())
			w.SetIndex(index)
			return w.WriteAll(records)
		},
	}

	cmd.Flags().BoolVar(&index, "index", false, "Prefix each row with its table index")
	cmd.Flags().StringSliceVar(&genes, "gene", nil, "Only print these genes (repeatable)")

	return cmd
}
