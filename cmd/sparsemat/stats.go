package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd reports shape, fill and value range of one matrix file
var statsCmd = &cobra.Command{
	Use:   "stats [m.txt]",
	Short: "Display matrix statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}

		s := m.Stats()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Dimensions: %d x %d\n", s.Rows, s.Cols)
		fmt.Fprintf(w, "Non-zero elements: %d\n", s.NonZero)
		fmt.Fprintf(w, "Total elements: %d\n", s.Total)
		fmt.Fprintf(w, "Density: %.4f%%\n", s.Density*100)
		if s.NonZero > 0 {
			fmt.Fprintf(w, "Minimum value: %d\n", s.Min)
			fmt.Fprintf(w, "Maximum value: %d\n", s.Max)
		}

		return nil
	},
}
