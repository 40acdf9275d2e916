package params

import (
	"slices"
	"testing"
)

func TestObject_Order(t *testing.T) {
	o := NewObject(
		Member{"b", Number(1)},
		Member{"a", Text("x")},
		Member{"c", Array{Number(1)}},
	)
	if got, want := o.keys(), []string{"b", "a", "c"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if o.Len() != 3 {
		t.Errorf("Len() = %d, want 3", o.Len())
	}

	var keys []string
	for k := range o.All() {
		keys = append(keys, k)
		if k == "a" {
			break
		}
	}
	if want := []string{"b", "a"}; !slices.Equal(keys, want) {
		t.Errorf("All() with break visited %v, want %v", keys, want)
	}
}

func TestObject_RepeatedKey(t *testing.T) {
	o := NewObject(
		Member{"a", Number(1)},
		Member{"b", Number(2)},
		Member{"a", Number(3)},
	)
	if got, want := o.keys(), []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if n, ok := o.Number("a"); !ok || n != 3 {
		t.Errorf("Number(a) = %v, %v; want 3, true", n, ok)
	}
}

func TestObject_NilValueSkipped(t *testing.T) {
	o := NewObject(Member{"a", nil})
	if o.Has("a") {
		t.Error("nil member must not be stored")
	}
}

func TestObject_TypedLookups(t *testing.T) {
	o := NewObject(
		Member{"n", Number(1.5)},
		Member{"t", Text("s")},
		Member{"o", NewObject(Member{"x", Number(1)})},
		Member{"a", Array{Text("e")}},
	)

	if _, ok := o.Number("t"); ok {
		t.Error("Number() must not coerce text")
	}
	if _, ok := o.Text("n"); ok {
		t.Error("Text() must not coerce number")
	}
	if _, ok := o.Number("missing"); ok {
		t.Error("Number() of missing key must fail")
	}
	if n, ok := o.Number("n"); !ok || n != 1.5 {
		t.Errorf("Number(n) = %v, %v", n, ok)
	}
	if s, ok := o.Text("t"); !ok || s != "s" {
		t.Errorf("Text(t) = %v, %v", s, ok)
	}
	if inner, ok := o.Object("o"); !ok || inner.Len() != 1 {
		t.Errorf("Object(o) = %v, %v", inner, ok)
	}
	if _, ok := o.Object("a"); ok {
		t.Error("Object() must not accept array")
	}
	if arr, ok := o.Array("a"); !ok || len(arr) != 1 {
		t.Errorf("Array(a) = %v, %v", arr, ok)
	}
	if !o.Has("t") || o.Has("T") {
		t.Error("Has() must be exact and case sensitive")
	}
}

func TestObject_Zero(t *testing.T) {
	var o Object
	if _, ok := o.Get("x"); ok {
		t.Error("zero Object must be empty")
	}
	if o.Len() != 0 || len(o.keys()) != 0 {
		t.Error("zero Object must have no members")
	}
}

func TestArray_At(t *testing.T) {
	a := Array{Number(1), Text("two")}
	if v, ok := a.At(1); !ok || v != Text("two") {
		t.Errorf("At(1) = %v, %v", v, ok)
	}
	for _, i := range []int{-1, 2, 100} {
		if _, ok := a.At(i); ok {
			t.Errorf("At(%d) must fail", i)
		}
	}
}

func TestAs_Nil(t *testing.T) {
	if _, ok := AsNumber(nil); ok {
		t.Error("AsNumber(nil)")
	}
	if _, ok := AsText(nil); ok {
		t.Error("AsText(nil)")
	}
	if _, ok := AsObject(nil); ok {
		t.Error("AsObject(nil)")
	}
	if _, ok := AsArray(nil); ok {
		t.Error("AsArray(nil)")
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		v    Value
		want Kind
	}{
		{Number(0), KindNumber},
		{Text(""), KindText},
		{Object{}, KindObject},
		{Array{}, KindArray},
	}
	for _, tt := range tests {
		if got := tt.v.Kind(); got != tt.want {
			t.Errorf("%#v.Kind() = %v, want %v", tt.v, got, tt.want)
		}
	}
}
