package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe/internal/core/domain"
)

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Summarise documents",
	Long: `Summarise the selected documents: file, category and extension counts and
byte sizes. --text adds paragraph and sentence counts, --words adds word
counts as well.`,
	Args: cobra.NoArgs,
	RunE: runStat,
}

var (
	flagStatText  bool
	flagStatWords bool
)

func init() {
	addSelectionFlags(statCmd)
	statCmd.Flags().BoolVar(&flagStatText, "text", false, "Count paragraphs and sentences")
	statCmd.Flags().BoolVar(&flagStatWords, "words", false, "Count words (implies --text)")
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, _ []string) error {
	reader, err := newReader()
	if err != nil {
		return err
	}
	sel, err := selectionFromFlags(cmd)
	if err != nil {
		return err
	}

	var s domain.StatSummary
	text := flagStatText || flagStatWords
	if text {
		s, err = reader.TextStat(sel, flagStatWords)
	} else {
		s, err = reader.Stat(sel)
	}
	if err != nil {
		return err
	}

	rows := statRows(s, text, flagStatWords)
	if isTerminal(cmd.OutOrStdout()) {
		cmd.Println(renderStyledStat(NewStyles(nil), reader.Root(), rows))
		return nil
	}
	for _, row := range rows {
		cmd.Printf("%s: %s\n", row[0], row[1])
	}
	return nil
}

// statRows lists label/value pairs in display order.
func statRows(s domain.StatSummary, text, words bool) [][2]string {
	rows := [][2]string{
		{"files", fmt.Sprint(s.Files)},
		{"categories", fmt.Sprint(s.Categories)},
		{"extensions", formatExtensions(s.Extensions)},
		{"total size", fmt.Sprint(s.TotalSize)},
		{"max size", fmt.Sprint(s.MaxSize)},
		{"min size", fmt.Sprint(s.MinSize)},
		{"mean size", fmt.Sprintf("%.2f", s.MeanSize)},
	}
	if text {
		rows = append(rows,
			[2]string{"paragraphs", fmt.Sprint(s.Paragraphs)},
			[2]string{"sentences", fmt.Sprint(s.Sentences)},
		)
	}
	if words {
		rows = append(rows, [2]string{"words", fmt.Sprint(s.Words)})
	}
	return rows
}

// formatExtensions renders the histogram as "html=1 txt=2", sorted by
// extension. Files without an extension are listed as "(none)".
func formatExtensions(exts map[string]int) string {
	parts := make([]string, 0, len(exts))
	for _, ext := range slices.Sorted(maps.Keys(exts)) {
		name := ext
		if name == "" {
			name = "(none)"
		}
		parts = append(parts, fmt.Sprintf("%s=%d", name, exts[ext]))
	}
	return strings.Join(parts, " ")
}

func renderStyledStat(styles *Styles, root string, rows [][2]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, styles.Title.Render("Corpus")+" "+styles.Muted.Render(root))
	for _, row := range rows {
		lines = append(lines, styles.Label.Render(row[0])+styles.Value.Render(row[1]))
	}
	return styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
