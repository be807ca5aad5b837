package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/willclause/internal/clauses"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the clauses in a directory",
	Long:  "List every .docx clause package in a directory with its derived title and extracted text. Packages that cannot be extracted are reported separately.",
	RunE:  runList,
}

var (
	clausesDir string
	asJSON     bool
)

func init() {
	listCmd.Flags().StringVarP(&clausesDir, "dir", "d", os.Getenv("CLAUSES_DIR"), "Clause directory (default $CLAUSES_DIR)")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "Print the listing as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if clausesDir == "" {
		return fmt.Errorf("--dir or CLAUSES_DIR is required")
	}
	log := logger()
	catalog := clauses.NewCatalog(os.DirFS(clausesDir), log)
	if _, err := catalog.Sources(); err != nil {
		return err
	}

	listing := clauses.NewService(catalog, log, 4).ListClauses(cmd.Context())
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	}
	printListing(cmd.OutOrStdout(), listing)
	return nil
}

func printListing(w io.Writer, listing clauses.Listing) {
	for _, c := range listing.Clauses {
		fmt.Fprintf(w, "== %s (%s)\n%s\n\n", c.Title, c.ID, c.Content)
	}
	for _, s := range listing.Skipped {
		fmt.Fprintf(w, "!! skipped %s: %s\n", s.ID, s.Error)
	}
	fmt.Fprintf(w, "%d clauses, %d skipped\n", len(listing.Clauses), len(listing.Skipped))
}
