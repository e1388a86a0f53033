package services

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strconv"

	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe/internal/logger"
)

// Ensure FileCatalog implements the interface.
var _ driving.Catalog = (*FileCatalog)(nil)

// DefaultFilesTable is the file name FilesToTable writes under the root.
const DefaultFilesTable = "index.csv"

// filesHeader names the columns of the files table.
var filesHeader = []string{"folder", "file", "ext", "size", "path"}

// FileCatalog is a Catalog over a directory tree of the form
// root/<category>/<file>. It keeps no index; every call lists the
// filesystem again and re-checks that files exist.
type FileCatalog struct {
	root  string
	table driven.TableWriter
}

// CatalogOption configures a FileCatalog.
type CatalogOption func(*FileCatalog)

// WithTableWriter sets the writer used by table exports.
func WithTableWriter(w driven.TableWriter) CatalogOption {
	return func(c *FileCatalog) {
		c.table = w
	}
}

// NewFileCatalog creates a catalog rooted at root.
func NewFileCatalog(root string, opts ...CatalogOption) *FileCatalog {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	c := &FileCatalog{root: root}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root returns the absolute corpus root.
func (c *FileCatalog) Root() string {
	return c.root
}

// Categories lists the non-hidden folders directly under the root in
// directory order. limit <= 0 means no limit.
func (c *FileCatalog) Categories(limit int) []string {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		logger.Warn("reading corpus root %s: %v", c.root, err)
		return nil
	}

	var categories []string
	for _, e := range entries {
		if limit > 0 && len(categories) == limit {
			break
		}
		if !e.IsDir() || domain.IsHidden(e.Name()) {
			continue
		}
		categories = append(categories, e.Name())
	}
	return categories
}

// IDs lists the non-hidden files of every category, or of the named
// categories when categories is non-nil. limit <= 0 means no limit and
// otherwise caps the whole enumeration.
func (c *FileCatalog) IDs(limit int, categories []string) []domain.DocID {
	var wanted map[string]struct{}
	if categories != nil {
		wanted = make(map[string]struct{}, len(categories))
		for _, cat := range categories {
			wanted[cat] = struct{}{}
		}
	}

	var ids []domain.DocID
	for _, cat := range c.Categories(0) {
		if wanted != nil {
			if _, ok := wanted[cat]; !ok {
				continue
			}
		}

		entries, err := os.ReadDir(filepath.Join(c.root, cat))
		if err != nil {
			logger.Warn("reading category %s: %v", cat, err)
			continue
		}
		for _, e := range entries {
			if domain.IsHidden(e.Name()) || !isDocument(filepath.Join(c.root, cat), e) {
				continue
			}
			if limit > 0 && len(ids) == limit {
				return ids
			}
			ids = append(ids, domain.NewDocID(cat, e.Name()))
		}
	}
	return ids
}

// Resolve expands sel into document ids: the given ids unchanged, the
// documents of the given categories, or the whole corpus.
func (c *FileCatalog) Resolve(sel domain.Selection) ([]domain.DocID, error) {
	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("%w: specify ids or categories, not both", err)
	}
	switch {
	case sel.Categories != nil:
		return c.IDs(0, sel.Categories), nil
	case sel.IDs != nil:
		return append([]domain.DocID{}, sel.IDs...), nil
	default:
		return c.IDs(0, nil), nil
	}
}

// IDToAbsPath returns the absolute path of id, or "" if no regular file
// exists there or the id does not name a file inside a category.
func (c *FileCatalog) IDToAbsPath(id domain.DocID) string {
	path, _ := c.stat(id)
	return path
}

// AbsPaths yields the absolute path of each id whose file exists.
func (c *FileCatalog) AbsPaths(ids []domain.DocID) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range ids {
			path, _ := c.stat(id)
			if path == "" {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// Paths resolves sel and yields the paths of existing documents.
func (c *FileCatalog) Paths(sel domain.Selection) (iter.Seq[string], error) {
	ids, err := c.Resolve(sel)
	if err != nil {
		return nil, err
	}
	return c.AbsPaths(ids), nil
}

// Sizes resolves sel and yields the byte size of each existing document.
func (c *FileCatalog) Sizes(sel domain.Selection) (iter.Seq[int64], error) {
	ids, err := c.Resolve(sel)
	if err != nil {
		return nil, err
	}
	return func(yield func(int64) bool) {
		for _, info := range c.existing(ids) {
			if !yield(info.Size()) {
				return
			}
		}
	}, nil
}

// Stat summarises the documents selected by sel.
func (c *FileCatalog) Stat(sel domain.Selection) (domain.StatSummary, error) {
	ids, err := c.Resolve(sel)
	if err != nil {
		return domain.StatSummary{}, err
	}
	return c.summarise(sel, ids)
}

// summarise builds the file-level part of a StatSummary over ids.
// The category count comes from sel.Categories when given, otherwise
// from the distinct categories of ids.
func (c *FileCatalog) summarise(sel domain.Selection, ids []domain.DocID) (domain.StatSummary, error) {
	s := domain.StatSummary{Extensions: make(map[string]int)}

	categories := make(map[string]struct{})
	if sel.Categories != nil {
		for _, cat := range sel.Categories {
			categories[cat] = struct{}{}
		}
	} else {
		for _, id := range ids {
			categories[id.Category] = struct{}{}
		}
	}
	s.Categories = len(categories)

	for id, info := range c.existing(ids) {
		size := info.Size()
		s.Files++
		s.Extensions[id.Ext()]++
		s.TotalSize += size
		if s.Files == 1 || size > s.MaxSize {
			s.MaxSize = size
		}
		if s.Files == 1 || size < s.MinSize {
			s.MinSize = size
		}
	}

	if s.Files == 0 {
		return domain.StatSummary{}, fmt.Errorf("%w: none of %d selected documents exist", domain.ErrEmptySet, len(ids))
	}
	s.MeanSize = float64(s.TotalSize) / float64(s.Files)
	return s, nil
}

// FilesToTable writes one row per document under the root to path, or to
// <root>/index.csv when path is empty, and returns the written path.
func (c *FileCatalog) FilesToTable(path string) (string, error) {
	if path == "" {
		path = filepath.Join(c.root, DefaultFilesTable)
	}
	ids := c.IDs(0, nil)
	rows := func(yield func([]string) bool) {
		for id, info := range c.existing(ids) {
			row := []string{
				id.Category,
				id.Name,
				id.Ext(),
				strconv.FormatInt(info.Size(), 10),
				filepath.Join(c.root, id.Category, id.Name),
			}
			if !yield(row) {
				return
			}
		}
	}
	if err := c.writeTable(path, filesHeader, rows); err != nil {
		return "", err
	}
	return path, nil
}

func (c *FileCatalog) writeTable(path string, header []string, rows iter.Seq[[]string]) error {
	if c.table == nil {
		return errors.New("no table writer configured")
	}
	if err := c.table.WriteTable(path, header, rows); err != nil {
		return fmt.Errorf("writing table %s: %w", path, err)
	}
	return nil
}

// existing yields each id whose file currently exists, with its file info.
func (c *FileCatalog) existing(ids []domain.DocID) iter.Seq2[domain.DocID, os.FileInfo] {
	return func(yield func(domain.DocID, os.FileInfo) bool) {
		for _, id := range ids {
			path, info := c.stat(id)
			if path == "" {
				continue
			}
			if !yield(id, info) {
				return
			}
		}
	}
}

// stat resolves id to a regular file under the root.
func (c *FileCatalog) stat(id domain.DocID) (string, os.FileInfo) {
	if !validSegment(id.Category) || !validSegment(id.Name) {
		return "", nil
	}
	path := filepath.Join(c.root, id.Category, id.Name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", nil
	}
	return path, info
}

// isDocument reports whether entry of dir is a regular file, directly or
// through a symlink, matching what stat accepts.
func isDocument(dir string, entry os.DirEntry) bool {
	switch {
	case entry.Type().IsRegular():
		return true
	case entry.Type()&os.ModeSymlink != 0:
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		return err == nil && info.Mode().IsRegular()
	default:
		return false
	}
}

// validSegment rejects empty names and anything that could leave its folder.
func validSegment(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}
