package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe/internal/logger"
	"github.com/custodia-labs/textpipe/internal/normalisers/cleaner"
)

// paragraphConverter rewrites a document as its paragraphs, one per line.
type paragraphConverter struct {
	source driven.ParagraphSource
	ext    string
	clean  bool
}

// Run converts args.DocID and returns the id written to the target.
func (c *paragraphConverter) Run(ctx context.Context, args *driving.StepArgs) (domain.DocID, error) {
	if err := ctx.Err(); err != nil {
		return domain.DocID{}, err
	}
	content, err := readDocument(args)
	if err != nil {
		return domain.DocID{}, err
	}

	clean := c.clean || getBoolFromConfig(args.Extra, CleanTextKey)
	var b strings.Builder
	for para := range c.source.Paragraphs(content) {
		if clean {
			para = cleaner.CleanParagraph(para)
		}
		if strings.TrimSpace(para) == "" {
			continue
		}
		b.WriteString(para)
		b.WriteByte('\n')
	}

	out := outputID(args.DocID, c.ext)
	if err := writeDocument(args.Target, out, b.String()); err != nil {
		return domain.DocID{}, err
	}
	return out, nil
}

// contentConverter rewrites a whole document with convert.
type contentConverter struct {
	ext     string
	convert func(string) (string, error)
}

// Run converts args.DocID and returns the id written to the target.
func (c *contentConverter) Run(ctx context.Context, args *driving.StepArgs) (domain.DocID, error) {
	if err := ctx.Err(); err != nil {
		return domain.DocID{}, err
	}
	content, err := readDocument(args)
	if err != nil {
		return domain.DocID{}, err
	}

	converted, err := c.convert(content)
	if err != nil {
		return domain.DocID{}, fmt.Errorf("converting %s: %w", args.DocID, err)
	}

	out := outputID(args.DocID, c.ext)
	if err := writeDocument(args.Target, out, converted); err != nil {
		return domain.DocID{}, err
	}
	return out, nil
}

// readDocument reads args.DocID from the step's catalog, falling back to
// the transformer's source.
func readDocument(args *driving.StepArgs) (string, error) {
	corpus := args.Corpus
	if corpus == nil {
		corpus = args.Source
	}
	if corpus == nil {
		return "", fmt.Errorf("%w: no catalog to read %s from", domain.ErrInvalidArgument, args.DocID)
	}

	path := corpus.IDToAbsPath(args.DocID)
	if path == "" {
		return "", fmt.Errorf("%w: %s in %s", domain.ErrNotFound, args.DocID, corpus.Root())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args.DocID, err)
	}
	return string(data), nil
}

// writeDocument stores content as id under the target root, creating the
// category folder when needed.
func writeDocument(target driving.Catalog, id domain.DocID, content string) error {
	if target == nil {
		return fmt.Errorf("%w: no target catalog for %s", domain.ErrInvalidArgument, id)
	}
	dir := filepath.Join(target.Root(), id.Category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, id.Name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Debug("wrote %s", path)
	return nil
}

// outputID renames id to ext, or keeps it when ext is empty.
func outputID(id domain.DocID, ext string) domain.DocID {
	if ext == "" {
		return id
	}
	return id.WithExt(ext)
}
