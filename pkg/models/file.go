package models

import (
	"time"
)

// TimestampKind identifies which semantic a creation-like timestamp carries.
// Not every platform exposes a true birth time, so the collector records what
// was actually available alongside the value itself.
type TimestampKind string

const (
	// KindBirth is a true file creation time (darwin, windows)
	KindBirth TimestampKind = "birth"
	// KindChange is the inode change time, the closest thing linux offers
	KindChange TimestampKind = "change"
	// KindModified means no creation-like time was available and the
	// modification time was used as a fallback
	KindModified TimestampKind = "modified"
)

// CandidateFile is a read-only snapshot of one regular file taken at
// collection time. A rename mutates the filesystem, never the snapshot.
type CandidateFile struct {
	// AbsolutePath is the full path on the filesystem
	AbsolutePath string

	// RelativePath is the path relative to the scan root
	RelativePath string

	// Dir is the parent directory; renames never leave it
	Dir string

	// Stem is the filename without its extension
	Stem string

	// Ext is the extension including the leading dot (may be empty)
	Ext string

	// ModTime is the last modification time
	ModTime time.Time

	// CreateTime is the best available creation-like timestamp
	CreateTime time.Time

	// CreateKind records which semantic CreateTime actually carries
	CreateKind TimestampKind
}

// Name returns the current basename of the file
func (f *CandidateFile) Name() string {
	return f.Stem + f.Ext
}
