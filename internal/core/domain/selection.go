package domain

// Selection picks documents for a catalog call: either explicit ids or
// whole categories. A nil slice means "not given"; giving both is invalid.
// The zero Selection selects every document.
type Selection struct {
	IDs        []DocID
	Categories []string
}

// All selects the whole corpus.
func All() Selection {
	return Selection{}
}

// ByIDs selects exactly the given ids. An empty call selects nothing.
func ByIDs(ids ...DocID) Selection {
	return Selection{IDs: append([]DocID{}, ids...)}
}

// ByCategories selects every document in the given categories.
func ByCategories(categories ...string) Selection {
	return Selection{Categories: append([]string{}, categories...)}
}

// Validate rejects selections that give both ids and categories.
func (s Selection) Validate() error {
	if s.IDs != nil && s.Categories != nil {
		return ErrInvalidArgument
	}
	return nil
}
