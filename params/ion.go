package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/amazon-ion/ion-go/ion"
)

// binary version marker, starts every binary Ion stream
var ionBVM = []byte{0xE0, 0x01, 0x00, 0xEA}

// IsBinary reports whether data is a binary Ion stream, such input must not
// go through any character set conversion.
func IsBinary(data []byte) bool {
	return bytes.HasPrefix(data, ionBVM)
}

// DecodeIon reads a single Ion value from text or binary Ion. Struct field
// order is preserved, symbols are read as Text.
func DecodeIon(r io.Reader) (Value, error) {
	rd := ion.NewReader(r)
	if !rd.Next() {
		if err := rd.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyDocument
	}
	v, err := readIonValue(rd)
	if err != nil {
		return nil, err
	}
	if rd.Next() {
		return nil, errors.New("more than one top-level value")
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

func readIonValue(r ion.Reader) (Value, error) {
	if r.IsNull() {
		return Text(nullLiteral), nil
	}

	switch r.Type() {
	case ion.BoolType:
		b, err := r.BoolValue()
		if err != nil {
			return nil, err
		}
		return boolLiteral(b != nil && *b), nil

	case ion.IntType:
		i, err := r.BigIntValue()
		if err != nil {
			return nil, err
		}
		if i == nil {
			return Text(nullLiteral), nil
		}
		f, _ := new(big.Float).SetInt(i).Float64()
		return Number(f), nil

	case ion.FloatType:
		f, err := r.FloatValue()
		if err != nil {
			return nil, err
		}
		if f == nil {
			return Text(nullLiteral), nil
		}
		return Number(*f), nil

	case ion.DecimalType:
		d, err := r.DecimalValue()
		if err != nil {
			return nil, err
		}
		if d == nil {
			return Text(nullLiteral), nil
		}
		return ionDecimal(d.String())

	case ion.StringType:
		s, err := r.StringValue()
		if err != nil {
			return nil, err
		}
		if s == nil {
			return Text(nullLiteral), nil
		}
		return Text(*s), nil

	case ion.SymbolType:
		tok, err := r.SymbolValue()
		if err != nil {
			return nil, err
		}
		if tok.Text != nil {
			return Text(*tok.Text), nil
		}
		return Text(fmt.Sprintf("$%d", tok.LocalSID)), nil

	case ion.TimestampType:
		ts, err := r.TimestampValue()
		if err != nil {
			return nil, err
		}
		if ts == nil {
			return Text(nullLiteral), nil
		}
		return Text(ts.GetDateTime().Format(time.RFC3339Nano)), nil

	case ion.ListType, ion.SexpType:
		return readIonList(r)

	case ion.StructType:
		return readIonStruct(r)
	}
	return nil, fmt.Errorf("unsupported ion type %v", r.Type())
}

// ionDecimal converts Ion decimal text (for example "1.5" or "15d-1").
func ionDecimal(s string) (Value, error) {
	f, err := strconv.ParseFloat(strings.NewReplacer("d", "e", "D", "e").Replace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("bad decimal %q: %w", s, err)
	}
	return Number(f), nil
}

func readIonList(r ion.Reader) (Value, error) {
	if err := r.StepIn(); err != nil {
		return nil, err
	}
	a := Array{}
	for r.Next() {
		v, err := readIonValue(r)
		if err != nil {
			return nil, fmt.Errorf("in element %d: %w", len(a), err)
		}
		a = append(a, v)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if err := r.StepOut(); err != nil {
		return nil, err
	}
	return a, nil
}

func readIonStruct(r ion.Reader) (Value, error) {
	if err := r.StepIn(); err != nil {
		return nil, err
	}
	var o Object
	for r.Next() {
		tok, err := r.FieldName()
		if err != nil {
			return nil, err
		}
		if tok == nil || tok.Text == nil {
			return nil, errors.New("struct field has no text")
		}
		v, err := readIonValue(r)
		if err != nil {
			return nil, fmt.Errorf("in field %q: %w", *tok.Text, err)
		}
		o = o.with(*tok.Text, v)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if err := r.StepOut(); err != nil {
		return nil, err
	}
	return o, nil
}
