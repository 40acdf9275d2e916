// Package archive reads parameter documents stored in zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned when archive has no requested document.
var ErrNotFound = errors.New("document not found in archive")

// WalkFunc is called for each regular file in archive visited by Walk. If an
// error is returned, processing stops and Walk returns that error.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits regular files in archive with names starting with prefix. Any
// entry with absolute name or ".." component fails the walk.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		if r != nil {
			r.Close()
		}
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// Document is a file read from archive.
type Document struct {
	Archive  string
	Name     string
	Modified time.Time
	Data     []byte
}

// ReadDocument reads member from archive. When member is empty the archive
// must contain exactly one file for which isDocument returns true.
func ReadDocument(archive, member string, isDocument func(name string) bool) (*Document, error) {
	member = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(member, `\`, "/")), "/")

	var (
		found      *Document
		candidates []string
	)
	err := Walk(archive, member, func(archive string, f *zip.File) error {
		if len(member) > 0 && f.Name != member {
			return nil
		}
		if len(member) == 0 && !isDocument(f.Name) {
			return nil
		}
		candidates = append(candidates, f.Name)
		if len(candidates) > 1 {
			return fmt.Errorf("archive has more than one document (%s), specify which to use", strings.Join(candidates, ", "))
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("unable to read %q: %w", f.Name, err)
		}
		found = &Document{Archive: archive, Name: f.Name, Modified: f.Modified, Data: data}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		if len(member) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, member)
		}
		return nil, ErrNotFound
	}
	return found, nil
}

// isSafePath returns false for absolute names and names with ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
