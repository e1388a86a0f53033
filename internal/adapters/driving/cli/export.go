package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export corpus tables",
	Long: `Export the file index, paragraphs or sentences as a table.

Paths ending in .db, .sqlite or .sqlite3 are written as SQLite databases
with one table named after the file; anything else is written as CSV.`,
}

var exportFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "Export one row per document (default: <root>/index.csv)",
	Args:  cobra.NoArgs,
	RunE:  runExportFiles,
}

var exportParasCmd = &cobra.Command{
	Use:   "paras",
	Short: "Export one row per paragraph (default: <root>/paras.csv)",
	Args:  cobra.NoArgs,
	RunE:  runExportUnits(true),
}

var exportSentsCmd = &cobra.Command{
	Use:   "sents",
	Short: "Export one row per sentence (default: <root>/sents.csv)",
	Args:  cobra.NoArgs,
	RunE:  runExportUnits(false),
}

// flagOut is the export destination.
var flagOut string

func init() {
	for _, cmd := range []*cobra.Command{exportFilesCmd, exportParasCmd, exportSentsCmd} {
		cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (.csv, .db, .sqlite)")
		exportCmd.AddCommand(cmd)
	}
	addSelectionFlags(exportParasCmd)
	addSelectionFlags(exportSentsCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportFiles(cmd *cobra.Command, _ []string) error {
	reader, err := newReader()
	if err != nil {
		return err
	}

	path, err := reader.FilesToTable(flagOut)
	if err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}

func runExportUnits(paragraphs bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		reader, err := newReader()
		if err != nil {
			return err
		}
		sel, err := selectionFromFlags(cmd)
		if err != nil {
			return err
		}

		var ids []domain.DocID
		if sel.IDs != nil || sel.Categories != nil {
			if ids, err = reader.Resolve(sel); err != nil {
				return err
			}
		}

		var path string
		if paragraphs {
			path, err = reader.ParasToTable(flagOut, ids)
		} else {
			path, err = reader.SentsToTable(flagOut, ids)
		}
		if err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", path)
		return nil
	}
}
