package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"docstyle/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter. When destination cannot be
// created report goes to temporary directory.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{entries: make(map[string]entry), file: f}, nil
}

// entry is either a file to be copied when report is finalized (so logs
// could be complete) or data captured at the moment of storing.
type entry struct {
	origin string // path as it was given, empty for data
	path   string // absolute path
	stamp  time.Time
	inline bool
	data   []byte
}

// Report accumulates everything needed to reproduce a run: the input
// document, content tree, resolved styles, effective configuration and logs.
// Nil report ignores all calls.
type Report struct {
	mu      sync.Mutex
	entries map[string]entry
	file    *os.File
}

// Close writes the archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finalize()
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file to be put into the archive under name. Storing the
// same file twice is fine, storing different file under existing name is a
// programming error.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, exists := r.entries[name]; exists && old.origin != path {
		panic(fmt.Sprintf("Attempt to overwrite file in the report for [%s]: was %s, now %s", name, old.origin, path))
	}

	e := entry{origin: path, path: path}
	if p, err := filepath.Abs(path); err == nil {
		e.path = p
	}
	r.entries[name] = e
}

// StoreData puts data into the archive under name. Names could not be reused.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("Attempt to overwrite data in the report for [%s]", name))
	}
	r.entries[name] = entry{inline: true, data: data, stamp: time.Now()}
}

func (r *Report) finalize() error {
	arc := zip.NewWriter(r.file)

	names, manifest := prepareManifest(r.entries)
	if err := saveFile(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	for _, name := range names {
		if err := saveEntry(arc, name, r.entries[name]); err != nil {
			return fmt.Errorf("unable to save %s to report: %w", name, err)
		}
	}
	return arc.Close()
}

func saveEntry(arc *zip.Writer, name string, e entry) error {
	if e.inline {
		return saveFile(arc, name, e.stamp, bytes.NewReader(e.data))
	}

	// absent files and anything which is not a regular file are listed in
	// manifest only
	info, err := os.Stat(e.path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(e.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(arc, name, info.ModTime(), f)
}

// prepareManifest returns sorted entry names and manifest describing them,
// one tab separated line per entry: time, name, origin.
func prepareManifest(entries map[string]entry) ([]string, *bytes.Buffer) {
	now := time.Now()

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%s %s (%s)\n", misc.GetAppName(), misc.GetVersion(), misc.GetGitHash())

	names := slices.Sorted(maps.Keys(entries))
	for _, name := range names {
		e := entries[name]
		stamp := e.stamp
		if stamp.IsZero() {
			stamp = now
		}
		origin := e.origin
		switch {
		case e.inline:
			origin = fmt.Sprintf("<%d bytes>", len(e.data))
		case e.path != e.origin:
			origin += " : " + e.path
		}
		fmt.Fprintf(buf, "%s\t%s\t%s\n", stamp.UTC().Format(time.RFC3339), name, origin)
	}
	return names, buf
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
