package domain

// ChangeType classifies a change to a corpus document.
type ChangeType string

// Change types reported by corpus watchers.
const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeDeleted ChangeType = "deleted"
)

// DocChange is one observed change to a document of a corpus.
type DocChange struct {
	Type ChangeType
	ID   DocID
}
