package fs

// EntryKind is the kind of entry a path names once symbolic links are followed.
type EntryKind int

const (
	// EntryNone means the path does not exist, cannot be reached or is neither a file nor a directory.
	EntryNone EntryKind = iota
	// EntryFile is a regular file.
	EntryFile
	// EntryDirectory is a directory.
	EntryDirectory
)

// String returns the name of the kind.
func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryDirectory:
		return "directory"
	default:
		return "none"
	}
}

// Entry is the classification of a path at the time it was inspected.
// Symlink is orthogonal to Kind: a link to a directory has Symlink set and Kind EntryDirectory.
type Entry struct {
	Path    string
	Kind    EntryKind
	Symlink bool
}

// Inspect classifies the entry at the given path.
func (f *realFS) Inspect(path string) Entry {
	entry := Entry{
		Path:    path,
		Kind:    EntryNone,
		Symlink: f.IsSymbolicLink(path),
	}

	switch {
	case f.IsDirectory(path):
		entry.Kind = EntryDirectory
	case f.IsFile(path):
		entry.Kind = EntryFile
	}

	return entry
}
