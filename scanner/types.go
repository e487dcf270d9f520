package scanner

// Entry is a single non-directory file found by Walk.
type Entry struct {
	// Path is absolute. For a followed symlink it is the link target.
	Path string
	Size uint64
}

// Stats counts what happened during a walk.
type Stats struct {
	Visited int // entries handed to the visit func
	Skipped int // unreadable entries, broken links, vanished files
}
