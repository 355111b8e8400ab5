// Command sparsemat operates on sparse integer matrix files: element-wise
// addition and subtraction, sparse multiplication, statistics and
// sparsity-pattern plots. All file I/O lives here; the sparse package
// itself never touches the filesystem.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	outPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sparsemat",
	Short: "sparsemat - sparse integer matrix operations on text files",
	Long: `sparsemat reads matrices in the textual DOK format:

  rows=<n>
  cols=<n>
  (row, col, value)
  ...

and performs addition, subtraction, sparse multiplication, statistics
reporting and sparsity-pattern plotting. Results are written back in the
same format with entries in canonical row-major order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, c := range []*cobra.Command{addCmd, subCmd, mulCmd} {
		c.Flags().StringVarP(&outPath, "out", "o", "", "result file path (default result_<op>_<timestamp>.txt)")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(spyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
