package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// CleanFileName makes single file name out of arbitrary text: path
// separators, control and reserved characters are dropped, as are leading
// dots.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		switch {
		case sym == '/' || sym == os.PathSeparator || sym == os.PathListSeparator:
			return -1
		case unicode.IsControl(sym) || strings.ContainsRune(reservedChars, sym):
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(out, ".")
	if len(out) == 0 {
		return badFileName
	}
	return out
}

// EntryName returns name for the report entry holding file (or data
// originated from file) name under section.
func EntryName(section, name string) string {
	return section + "/" + CleanFileName(filepath.Base(name))
}
