// Package archive defines the contract an archive format backend
// (zip, tar, 7z, rar) must honor. It carries no implementations:
// each format is expected to provide its own Opener in follow-on
// work.
//
// Entry paths inside a container are attacker-controlled. A backend
// must run every entry path through the sanitize package before any
// filesystem write; nothing here enforces that, it is a contract
// obligation on implementations.
package archive

import (
	"errors"
	"io"
	"iter"

	"github.com/joshuamegnauth54/bucciarati/pkg/sanitize"
)

// Error kinds a backend reports, so callers can classify failures
// with errors.Is regardless of format.
var (
	ErrUnsupportedFormat = errors.New("unsupported archive format")
	ErrBadPassword       = errors.New("wrong or missing archive password")
	ErrCorruptEntry      = errors.New("corrupt archive entry")
)

// Entry is one node of a container's directory tree. Path is the
// slash-separated name as stored in the container and is untrusted
// until sanitized.
type Entry struct {
	Path  string
	IsDir bool
	Size  int64
}

// Archive is an opened container.
type Archive interface {
	// Extract writes the container's contents under dest. dest
	// must come from the sanitize package; Extract performs no
	// path validation of its own.
	Extract(dest sanitize.SanitizedPath) error

	// Tree lazily enumerates the container's directory tree.
	// The sequence is finite; whether it can be ranged over more
	// than once is up to the implementation.
	Tree() iter.Seq[Entry]
}

// Opener opens a container from a seekable byte source. password is
// empty when the container is not protected.
type Opener interface {
	Open(r io.ReadSeeker, password string) (Archive, error)
}
