package archive

import (
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuamegnauth54/bucciarati/pkg/sanitize"
)

// fakeArchive stands in for a format backend: it records where it
// was asked to extract and enumerates a fixed tree.
type fakeArchive struct {
	entries   []Entry
	extracted []string
}

func (a *fakeArchive) Extract(dest sanitize.SanitizedPath) error {
	a.extracted = append(a.extracted, dest.String())
	return nil
}

func (a *fakeArchive) Tree() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range a.entries {
			if !yield(e) {
				return
			}
		}
	}
}

type fakeOpener struct{}

func (fakeOpener) Open(
	r io.ReadSeeker, password string,
) (Archive, error) {
	if password != "" {
		return nil, ErrBadPassword
	}
	return &fakeArchive{
		entries: []Entry{
			{Path: "docs", IsDir: true},
			{Path: "docs/readme.txt", Size: 12},
			{Path: "../../etc/passwd", Size: 1},
		},
	}, nil
}

var (
	_ Archive = (*fakeArchive)(nil)
	_ Opener  = fakeOpener{}
)

func TestErrorKindsDistinct(t *testing.T) {
	kinds := []error{
		ErrUnsupportedFormat,
		ErrBadPassword,
		ErrCorruptEntry,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b))
		}
	}
}

func TestOpenerReportsKind(t *testing.T) {
	_, err := fakeOpener{}.Open(nil, "hunter2")
	assert.ErrorIs(t, err, ErrBadPassword)
}

func TestEntryPathsConfinedAfterSanitize(t *testing.T) {
	a, err := fakeOpener{}.Open(nil, "")
	require.NoError(t, err)

	for e := range a.Tree() {
		sp, err := sanitize.Sanitize(e.Path, "/safe/dir")
		require.NoError(t, err)
		assert.True(t,
			sanitize.Within("/safe/dir", sp.String()),
			"entry escapes: %q", e.Path,
		)
	}
}

func TestTreeStopsWhenYieldFalse(t *testing.T) {
	a := &fakeArchive{entries: []Entry{
		{Path: "a"}, {Path: "b"}, {Path: "c"},
	}}
	var seen []string
	for e := range a.Tree() {
		seen = append(seen, e.Path)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}
