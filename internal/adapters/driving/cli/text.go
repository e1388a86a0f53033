package cli

import (
	"iter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe/internal/core/domain"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print document contents",
	Args:  cobra.NoArgs,
	RunE:  runUnits(func(r textSource, sel domain.Selection) (iter.Seq[string], error) { return r.Docs(sel) }),
}

var parasCmd = &cobra.Command{
	Use:   "paras",
	Short: "Print paragraphs, one per line",
	Args:  cobra.NoArgs,
	RunE:  runUnits(func(r textSource, sel domain.Selection) (iter.Seq[string], error) { return r.Paras(sel) }),
}

var sentsCmd = &cobra.Command{
	Use:   "sents",
	Short: "Print sentences and clauses, one per line",
	Args:  cobra.NoArgs,
	RunE:  runUnits(func(r textSource, sel domain.Selection) (iter.Seq[string], error) { return r.Sents(sel) }),
}

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print word tokens, one per line",
	Long: `Print word tokens, one per line. With --clean, tokens are lowercased,
stop words are dropped, and --stemmer stems what remains.`,
	Args: cobra.NoArgs,
	RunE: runUnits(func(r textSource, sel domain.Selection) (iter.Seq[string], error) { return r.Words(sel) }),
}

// textSource is the part of a text reader the unit commands use.
type textSource interface {
	Docs(sel domain.Selection) (iter.Seq[string], error)
	Paras(sel domain.Selection) (iter.Seq[string], error)
	Sents(sel domain.Selection) (iter.Seq[string], error)
	Words(sel domain.Selection) (iter.Seq[string], error)
}

// flagUnitLimit stops printing after this many units.
var flagUnitLimit int

func init() {
	for _, cmd := range []*cobra.Command{docsCmd, parasCmd, sentsCmd, wordsCmd} {
		addSelectionFlags(cmd)
		cmd.Flags().IntVarP(&flagUnitLimit, "limit", "n", 0, "Stop after this many lines (0 = all)")
		rootCmd.AddCommand(cmd)
	}
}

// runUnits prints every element of the sequence open returns.
func runUnits(open func(textSource, domain.Selection) (iter.Seq[string], error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		reader, err := newReader()
		if err != nil {
			return err
		}
		sel, err := selectionFromFlags(cmd)
		if err != nil {
			return err
		}

		units, err := open(reader, sel)
		if err != nil {
			return err
		}

		n := 0
		for unit := range units {
			cmd.Println(unit)
			n++
			if flagUnitLimit > 0 && n == flagUnitLimit {
				break
			}
		}
		return nil
	}
}
