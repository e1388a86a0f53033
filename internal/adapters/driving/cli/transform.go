package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/watch"
	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe/internal/core/services"
	"github.com/custodia-labs/textpipe/internal/logger"
	"github.com/custodia-labs/textpipe/internal/steps"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Run named steps over documents into a target corpus",
	Long: `Run one or more named steps over every selected document of the source
corpus (--root), writing results into the target corpus. Each step sees the
document id the previous step produced.

Step settings are given as --set <step>.<key>=<value>; they configure the
step and are passed to it for every document.

Examples:
  textpipe transform --root html --target txt --step html2txt --set html2txt.clean_text=true
  textpipe transform --root raw --target md --step html2md --only-ext html,htm --debug
  textpipe transform --root raw --target txt --step html2txt --watch`,
	Args: cobra.NoArgs,
	RunE: runTransform,
}

var (
	flagTarget  string
	flagSteps   []string
	flagSet     []string
	flagOnlyExt []string
	flagDebug   bool
	flagWatch   bool
)

func init() {
	addSelectionFlags(transformCmd)
	transformCmd.Flags().StringVarP(&flagTarget, "target", "t", "", "Target corpus root (required)")
	transformCmd.Flags().StringSliceVarP(&flagSteps, "step", "s", nil, "Step to run, in order (repeatable)")
	transformCmd.Flags().StringArrayVar(&flagSet, "set", nil, "Step setting <step>.<key>=<value> (repeatable)")
	transformCmd.Flags().StringSliceVar(&flagOnlyExt, "only-ext", nil, "Only transform documents with these extensions")
	transformCmd.Flags().BoolVar(&flagDebug, "debug", false, "Print one progress line per document")
	transformCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Keep running and transform documents as they change")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, _ []string) error {
	if flagTarget == "" {
		return errors.New("--target is required")
	}
	if len(flagSteps) == 0 {
		return errors.New("at least one --step is required")
	}
	if stepRegistry == nil {
		return errors.New("step registry not configured")
	}

	reader, err := newReader()
	if err != nil {
		return err
	}
	sel, err := selectionFromFlags(cmd)
	if err != nil {
		return err
	}
	stepArgs, err := parseStepSettings(flagSet)
	if err != nil {
		return err
	}

	source := reader.FileCatalog
	target := services.NewFileCatalog(flagTarget)
	if flagWatch && within(source.Root(), target.Root()) {
		return fmt.Errorf("%w: --watch needs a target outside the source root %s", domain.ErrInvalidArgument, source.Root())
	}
	pipeline, err := stepRegistry.Pipeline(flagSteps, stepArgs, source)
	if err != nil {
		return err
	}
	// Later steps read what the step before them wrote.
	for i := 1; i < len(pipeline); i++ {
		pipeline[i].Catalog = target
	}

	opts := driving.TransformOptions{
		Args:     stepArgs,
		Debug:    flagDebug,
		Progress: cmd.OutOrStdout(),
	}
	if sel.IDs != nil || sel.Categories != nil {
		if opts.IDs, err = reader.Resolve(sel); err != nil {
			return err
		}
	}
	if len(flagOnlyExt) > 0 {
		opts.Include = steps.ByExtension(flagOnlyExt...)
	}

	transformer := services.NewTransformer(source, target)

	var count int
	opts.After = func(context.Context, driving.Catalog, domain.DocID) error {
		count++
		return nil
	}
	if err := transformer.Transform(cmd.Context(), pipeline, opts); err != nil {
		return err
	}

	cmd.Printf("Transformed %d documents into %s\n", count, target.Root())
	if !flagWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", source.Root())
	return watchTransform(ctx, cmd, watch.New(source.Root()), transformer, pipeline, opts, sel)
}

// watchTransform runs the pipeline again for every created or updated
// document that sel admits, until ctx is cancelled or the watcher stops.
// A failing document is reported and watching continues.
func watchTransform(ctx context.Context, cmd *cobra.Command, watcher driven.CorpusWatcher, transformer driving.Transformer, pipeline []driving.Step, opts driving.TransformOptions, sel domain.Selection) error {
	changes, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}
	defer watcher.Close()

	for change := range changes {
		if change.Type == domain.ChangeDeleted || !selects(sel, change.ID) {
			logger.Debug("ignoring %s %s", change.Type, change.ID)
			continue
		}

		run := opts
		run.IDs = []domain.DocID{change.ID}
		if err := transformer.Transform(ctx, pipeline, run); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Warn("transform %s: %v", change.ID, err)
			continue
		}
		cmd.Printf("%s %s\n", change.Type, change.ID)
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// selects reports whether sel admits id.
func selects(sel domain.Selection, id domain.DocID) bool {
	switch {
	case sel.IDs != nil:
		return slices.Contains(sel.IDs, id)
	case sel.Categories != nil:
		return slices.Contains(sel.Categories, id.Category)
	default:
		return true
	}
}

// parseStepSettings turns "<step>.<key>=<value>" pairs into per-step maps.
func parseStepSettings(pairs []string) (map[string]map[string]any, error) {
	settings := make(map[string]map[string]any)
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		step, field, dotted := strings.Cut(key, ".")
		if !ok || !dotted || step == "" || field == "" {
			return nil, fmt.Errorf("%w: setting %q is not <step>.<key>=<value>", domain.ErrInvalidArgument, pair)
		}
		if settings[step] == nil {
			settings[step] = make(map[string]any)
		}
		settings[step][field] = value
	}
	return settings, nil
}
