package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/willclause/internal/clauses"
	"github.com/dgallion1/willclause/internal/ooxml"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE.docx",
	Short: "Print the text of one clause package",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var letteredStyle string

func init() {
	extractCmd.Flags().StringVar(&letteredStyle, "lettered-style", ooxml.LetteredResolutionStyle, "Paragraph style rendered as a lettered sub-list")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	text, err := ooxml.ExtractTextWith(ooxml.Walker{LetteredStyle: letteredStyle}, data)
	if err != nil {
		return fmt.Errorf("extract %s: %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", clauses.DeriveTitle(name), text)
	return nil
}
