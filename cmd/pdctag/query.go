package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inodb/pdctag/internal/duckdb"
	"github.com/inodb/pdctag/internal/genome"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql>",
		Short: "Run SQL against the mutation table",
		Long:  "Load the mutation table into an in-memory DuckDB table named " + duckdb.TableName + " and run a SQL statement against it.",
		Example: `  pdctag query "SELECT mutation_type, COUNT(*) FROM mutation_records GROUP BY 1"
  pdctag query "SELECT gene FROM mutation_records WHERE mutation_frequency > 0.05"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := duckdb.Open("")
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.LoadTable(genome.Generate()); err != nil {
				return fmt.Errorf("loading table: %w", err)
			}

			res, err := store.Query(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(res.Columns, "\t"))
			for _, row := range res.Rows {
				fmt.Fprintln(out, strings.Join(row, "\t"))
			}
			return nil
		},
	}
}
