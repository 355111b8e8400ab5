package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sparsemat/sparse"
)

// addCmd sums two matrix files
var addCmd = &cobra.Command{
	Use:   "add [a.txt] [b.txt]",
	Short: "Add two matrices of identical dimensions",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinaryOp("add", sparse.Add),
}

// subCmd subtracts the second matrix file from the first
var subCmd = &cobra.Command{
	Use:   "sub [a.txt] [b.txt]",
	Short: "Subtract the second matrix from the first",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinaryOp("sub", sparse.Sub),
}

// mulCmd multiplies two matrix files
var mulCmd = &cobra.Command{
	Use:   "mul [a.txt] [b.txt]",
	Short: "Multiply two matrices (a.cols must equal b.rows)",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinaryOp("mul", sparse.Mul),
}

// loadMatrix parses one matrix file, wrapping I/O and format failures
// with the offending path.
func loadMatrix(path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := sparse.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return m, nil
}

// resultFileName derives the default output path for an operation.
func resultFileName(op string, now time.Time) string {
	return fmt.Sprintf("result_%s_%s.txt", op, now.Format("20060102T150405"))
}

// saveMatrix writes the canonical serialization of m to path.
func saveMatrix(m *sparse.Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err = m.WriteTo(f); err != nil {
		f.Close()

		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// runBinaryOp builds the RunE handler shared by add, sub and mul:
// load both operands, apply op, save the result.
func runBinaryOp(name string, op func(a, b *sparse.Matrix) (*sparse.Matrix, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		b, err := loadMatrix(args[1])
		if err != nil {
			return err
		}
		logger.Debug("operands loaded",
			zap.String("op", name),
			zap.Int("a_entries", a.Len()),
			zap.Int("b_entries", b.Len()))

		res, err := op(a, b)
		if err != nil {
			return fmt.Errorf("%s %s %s: %w", name, args[0], args[1], err)
		}

		path := outPath
		if path == "" {
			path = resultFileName(name, time.Now())
		}
		if err = saveMatrix(res, path); err != nil {
			return err
		}
		logger.Info("result written",
			zap.String("op", name),
			zap.String("path", path),
			zap.Int("entries", res.Len()))
		fmt.Fprintf(cmd.OutOrStdout(), "Result saved to %s\n", path)

		return nil
	}
}
