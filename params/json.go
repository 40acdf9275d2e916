package params

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/json"
)

// DecodeJSON reads a single JSON document. Object key order is preserved.
func DecodeJSON(r io.Reader) (Value, error) {
	d := jsonDecoder{p: json.NewParser(parse.NewInput(r))}

	gt, data, err := d.next()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDocument
	}
	if err != nil {
		return nil, err
	}
	v, err := d.value(gt, data)
	if err != nil {
		return nil, err
	}
	if gt, _, err := d.next(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %s after top-level value", gt)
	}
	return v, nil
}

type jsonDecoder struct {
	p *json.Parser
}

// next returns the next significant grammar. io.EOF is returned as is at
// the end of input.
func (d *jsonDecoder) next() (json.GrammarType, []byte, error) {
	for {
		gt, data := d.p.Next()
		switch gt {
		case json.WhitespaceGrammar:
			continue
		case json.ErrorGrammar:
			if err := d.p.Err(); err != nil {
				return gt, nil, err
			}
			return gt, nil, io.ErrUnexpectedEOF
		}
		return gt, data, nil
	}
}

// more is next for positions where input must continue.
func (d *jsonDecoder) more() (json.GrammarType, []byte, error) {
	gt, data, err := d.next()
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return gt, data, err
}

func (d *jsonDecoder) value(gt json.GrammarType, data []byte) (Value, error) {
	switch gt {
	case json.NumberGrammar:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("bad number %q: %w", data, err)
		}
		// out of range numbers saturate to ±Inf
		return Number(f), nil

	case json.StringGrammar:
		s, err := unquoteJSON(data)
		if err != nil {
			return nil, err
		}
		return Text(s), nil

	case json.LiteralGrammar:
		switch string(data) {
		case "true":
			return boolLiteral(true), nil
		case "false":
			return boolLiteral(false), nil
		default:
			return Text(nullLiteral), nil
		}

	case json.StartObjectGrammar:
		return d.object()

	case json.StartArrayGrammar:
		return d.array()
	}
	return nil, fmt.Errorf("unexpected %s", gt)
}

func (d *jsonDecoder) object() (Value, error) {
	var o Object
	for {
		gt, data, err := d.more()
		if err != nil {
			return nil, err
		}
		if gt == json.EndObjectGrammar {
			return o, nil
		}
		if gt != json.StringGrammar {
			return nil, fmt.Errorf("expected object key, got %s", gt)
		}
		key, err := unquoteJSON(data)
		if err != nil {
			return nil, err
		}

		gt, data, err = d.more()
		if err != nil {
			return nil, err
		}
		v, err := d.value(gt, data)
		if err != nil {
			return nil, fmt.Errorf("in member %q: %w", key, err)
		}
		o = o.with(key, v)
	}
}

func (d *jsonDecoder) array() (Value, error) {
	a := Array{}
	for {
		gt, data, err := d.more()
		if err != nil {
			return nil, err
		}
		if gt == json.EndArrayGrammar {
			return a, nil
		}
		v, err := d.value(gt, data)
		if err != nil {
			return nil, fmt.Errorf("in element %d: %w", len(a), err)
		}
		a = append(a, v)
	}
}

// unquoteJSON decodes a quoted JSON string token including escapes.
func unquoteJSON(data []byte) (string, error) {
	var s string
	if err := stdjson.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("bad string %s: %w", data, err)
	}
	return s, nil
}
