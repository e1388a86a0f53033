package steps

import (
	"context"
	"strings"

	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
)

// ByExtension admits documents whose extension is one of exts.
// Extensions match case-insensitively, with or without a leading dot.
// With no extensions every document is admitted.
func ByExtension(exts ...string) driving.IncludeFunc {
	wanted := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		wanted[domain.NormaliseExt("x."+strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return func(_ context.Context, _ driving.Catalog, id domain.DocID) (bool, error) {
		if len(wanted) == 0 {
			return true, nil
		}
		_, ok := wanted[id.Ext()]
		return ok, nil
	}
}

// Exists admits documents whose file is present in the source catalog.
func Exists(_ context.Context, source driving.Catalog, id domain.DocID) (bool, error) {
	return source.IDToAbsPath(id) != "", nil
}
