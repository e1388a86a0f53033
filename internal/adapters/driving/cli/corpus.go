package cli

import (
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List corpus categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List document ids",
	Long:  `List document ids as <category>/<name>, optionally restricted to categories.`,
	Args:  cobra.NoArgs,
	RunE:  runIDs,
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List absolute paths of existing documents",
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

// flagLimit caps listings. Zero or less means no limit.
var flagLimit int

func init() {
	categoriesCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Maximum number of categories")
	idsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Maximum number of ids")
	idsCmd.Flags().StringSliceVar(&flagCategories, "category", nil, "Category name (repeatable)")
	addSelectionFlags(pathsCmd)

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(idsCmd)
	rootCmd.AddCommand(pathsCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	reader, err := newReader()
	if err != nil {
		return err
	}

	for _, category := range reader.Categories(flagLimit) {
		cmd.Println(category)
	}
	return nil
}

func runIDs(cmd *cobra.Command, _ []string) error {
	reader, err := newReader()
	if err != nil {
		return err
	}

	var categories []string
	if cmd.Flags().Changed("category") {
		categories = append([]string{}, flagCategories...)
	}
	for _, id := range reader.IDs(flagLimit, categories) {
		cmd.Println(id.String())
	}
	return nil
}

func runPaths(cmd *cobra.Command, _ []string) error {
	reader, err := newReader()
	if err != nil {
		return err
	}
	sel, err := selectionFromFlags(cmd)
	if err != nil {
		return err
	}

	paths, err := reader.Paths(sel)
	if err != nil {
		return err
	}
	for path := range paths {
		cmd.Println(path)
	}
	return nil
}
