package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Literals which have no variant of their own (booleans, null) are kept as
// Text holding their spelling. This keeps presence of a key observable while
// any typed read of such a value mismatches.
const nullLiteral = "null"

func boolLiteral(b bool) Text {
	if b {
		return Text("true")
	}
	return Text("false")
}

// FormatFromExt returns format for known document file name extensions.
func FormatFromExt(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJson, true
	case ".yaml", ".yml":
		return FormatYaml, true
	case ".hcl", ".tf":
		return FormatHcl, true
	case ".ion", ".10n":
		return FormatIon, true
	}
	return FormatAuto, false
}

// DetectFormat guesses format from file name extension, and falls back to
// looking at the first significant byte of data.
func DetectFormat(name string, data []byte) Format {
	if f, ok := FormatFromExt(name); ok {
		return f
	}
	if IsBinary(data) {
		return FormatIon
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJson
	}
	return FormatYaml
}

// ErrEmptyDocument is returned when input holds no value at all.
var ErrEmptyDocument = errors.New("empty document")

// Decode reads a complete document in the requested format. For FormatAuto
// the format is detected from name and content.
func Decode(r io.Reader, name string, f Format) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", name, err)
	}
	if f == FormatAuto {
		f = DetectFormat(name, data)
	}

	var v Value
	switch f {
	case FormatJson:
		v, err = DecodeJSON(bytes.NewReader(data))
	case FormatYaml:
		v, err = DecodeYAML(data)
	case FormatHcl:
		v, err = DecodeHCL(data, name)
	case FormatIon:
		v, err = DecodeIon(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported input format %s", f)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s as %s: %w", name, f, err)
	}
	return v, nil
}
