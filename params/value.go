// Package params defines the dynamic value tree produced by authoring
// front-ends and consumed read-only by the style resolver.
//
// A Value is exactly one of Number, Text, Object or Array. There is no
// implicit coercion between variants: the As* accessors report false when
// the value is of another variant.
package params

import "iter"

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNumber Kind = iota + 1
	KindText
	KindObject
	KindArray
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a node of the dynamic value tree. The set of implementations is
// closed: Number, Text, Object and Array.
type Value interface {
	Kind() Kind
	value()
}

// Number is a numeric value.
type Number float64

// Text is a string value.
type Text string

// Array is an ordered sequence of values.
type Array []Value

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a mapping from string keys to values which remembers insertion
// order. The zero Object is empty and ready to use for lookups.
type Object struct {
	members []Member
	index   map[string]int
}

func (Number) Kind() Kind { return KindNumber }
func (Text) Kind() Kind   { return KindText }
func (Object) Kind() Kind { return KindObject }
func (Array) Kind() Kind  { return KindArray }

func (Number) value() {}
func (Text) value()   {}
func (Object) value() {}
func (Array) value()  {}

// NewObject builds an Object from members in order. A repeated key replaces
// the earlier value but keeps the earlier position.
func NewObject(members ...Member) Object {
	var o Object
	for _, m := range members {
		o = o.with(m.Key, m.Value)
	}
	return o
}

// with returns the object with key set to v. Nil values are not stored.
func (o Object) with(key string, v Value) Object {
	if v == nil {
		return o
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return o
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
	return o
}

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether key is present regardless of its variant.
func (o Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Len returns number of members.
func (o Object) Len() int {
	return len(o.members)
}

// keys returns member keys in insertion order.
func (o Object) keys() []string {
	keys := make([]string, 0, len(o.members))
	for _, m := range o.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// All iterates over members in insertion order.
func (o Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Number returns the member under key if it is a Number.
func (o Object) Number(key string) (float64, bool) {
	v, _ := o.Get(key)
	return AsNumber(v)
}

// Text returns the member under key if it is a Text.
func (o Object) Text(key string) (string, bool) {
	v, _ := o.Get(key)
	return AsText(v)
}

// Object returns the member under key if it is an Object.
func (o Object) Object(key string) (Object, bool) {
	v, _ := o.Get(key)
	return AsObject(v)
}

// Array returns the member under key if it is an Array.
func (o Object) Array(key string) (Array, bool) {
	v, _ := o.Get(key)
	return AsArray(v)
}

// At returns the element at index i.
func (a Array) At(i int) (Value, bool) {
	if i < 0 || i >= len(a) {
		return nil, false
	}
	return a[i], true
}

// AsNumber returns v as float64 when v is a Number.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsText returns v as string when v is a Text.
func AsText(v Value) (string, bool) {
	s, ok := v.(Text)
	return string(s), ok
}

// AsObject returns v when it is an Object.
func AsObject(v Value) (Object, bool) {
	o, ok := v.(Object)
	return o, ok
}

// AsArray returns v when it is an Array.
func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}
