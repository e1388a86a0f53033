package driven

import "iter"

// TableWriter exports rows to a tabular file. The header row comes first;
// each row has one value per header column.
type TableWriter interface {
	WriteTable(path string, header []string, rows iter.Seq[[]string]) error
}
