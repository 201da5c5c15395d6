// Package fs provides file-based discovery of input documents and storage
// of extracted records.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/leis"
)

// Ensure Discoverer implements leis.SourceDiscoverer at compile time.
var _ leis.SourceDiscoverer = (*Discoverer)(nil)

// Discoverer finds HTML documents in a directory tree. A document's
// category is the name of the directory that contains it.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// Discover walks root in lexical order and returns every .html or .htm file.
// Files directly under root take root's own name as their category.
func (d *Discoverer) Discover(ctx context.Context, root string) ([]leis.Source, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, leis.Errorf(leis.ENOTFOUND, "directory %q not found", root)
	}
	if !info.IsDir() {
		return nil, leis.Errorf(leis.EINVALID, "%q is not a directory", root)
	}

	var sources []leis.Source
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !entry.Type().IsRegular() || !isHTML(path) {
			return nil
		}

		category := filepath.Base(filepath.Dir(path))
		if filepath.Clean(filepath.Dir(path)) == filepath.Clean(root) {
			category = filepath.Base(abs)
		}

		sources = append(sources, leis.Source{Path: path, Category: category})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
