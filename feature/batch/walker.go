package batch

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Entry is a file selected by Walk.
type Entry struct {
	// Path is the full path of the file.
	Path string
	// Name is the file name without directories.
	Name string
}

// WalkOptions controls a folder walk.
type WalkOptions struct {
	// Filter selects files by extension. Nil accepts everything.
	Filter Filter
	// Recursive descends into sub-directories.
	Recursive bool
}

// Walk lazily enumerates the files under root that pass the filter.
// Enumeration order follows the filesystem walk and must not be relied upon.
// An error on root is yielded once and ends the sequence; errors on nested
// entries are yielded and the walk continues. Each call performs one traversal.
func Walk(fs afero.Fs, root string, opts WalkOptions) iter.Seq2[Entry, error] {
	filter := opts.Filter
	if filter == nil {
		filter = AllFiles
	}

	return func(yield func(Entry, error) bool) {
		stopped := false
		err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				if !yield(Entry{Path: path, Name: filepath.Base(path)}, err) {
					stopped = true
					return filepath.SkipAll
				}
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if info.IsDir() {
				if path != root && !opts.Recursive {
					return filepath.SkipDir
				}
				return nil
			}

			if !filter(strings.ToLower(filepath.Ext(info.Name()))) {
				return nil
			}
			if !yield(Entry{Path: path, Name: info.Name()}, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})

		if err != nil && !stopped && !errors.Is(err, filepath.SkipAll) {
			yield(Entry{Path: root, Name: filepath.Base(root)}, err)
		}
	}
}
