package types

// EntryType is the kind of object a tree entry points at.
type EntryType string

const (
	EntryBlob   EntryType = "blob"
	EntryTree   EntryType = "tree"
	EntryCommit EntryType = "commit"
)

// RepositoryHandle is a resolved remote repository. Only the fields the
// pipeline reads downstream are kept.
type RepositoryHandle struct {
	Owner         string
	Name          string
	FullName      string
	DefaultBranch string
}

// TreeEntry is one entry of a recursive git tree listing.
type TreeEntry struct {
	Path string
	Type EntryType
}

// IsBlob reports whether the entry is an ordinary file.
func (e TreeEntry) IsBlob() bool {
	return e.Type == EntryBlob
}

// GuideResult is what a full pipeline run hands back to a caller.
type GuideResult struct {
	Repository     RepositoryHandle
	Files          []string
	ImportantFiles []string
	Guide          string
}
