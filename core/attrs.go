package core

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ValueKind enumerates the kinds an attribute Value may hold.
type ValueKind uint8

const (
	// KindString is a UTF-8 string value.
	KindString ValueKind = iota + 1
	// KindNumber is a float64 value.
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindMap is a nested attribute bag.
	KindMap
)

// String returns the lowercase kind name (used in error messages and logs).
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is a tagged union of the attribute kinds a vertex, edge, or hyperedge
// may carry: string, number, boolean, or a nested attribute bag.
//
// The zero Value is invalid; construct values via String, Number, Bool, or Map.
// Equality is structural and kind-sensitive: Number(1) != String("1").
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	m    Attrs
}

// Attrs is an open attribute bag: string keys mapped to tagged values.
// Insertion order is irrelevant; equality and serialization are key-wise.
type Attrs map[string]Value

// String constructs a string-kinded Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number constructs a number-kinded Value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool constructs a boolean-kinded Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Map constructs a map-kinded Value holding a nested attribute bag.
func Map(m Attrs) Value { return Value{kind: KindMap, m: m} }

// Kind reports which union arm the Value holds (zero for the zero Value).
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string arm; ok is false when the kind differs.
func (v Value) AsString() (s string, ok bool) { return v.str, v.kind == KindString }

// AsNumber returns the number arm; ok is false when the kind differs.
func (v Value) AsNumber() (n float64, ok bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean arm; ok is false when the kind differs.
func (v Value) AsBool() (b bool, ok bool) { return v.b, v.kind == KindBool }

// AsMap returns the nested bag; ok is false when the kind differs.
// The returned map is the live nested bag, not a copy.
func (v Value) AsMap() (m Attrs, ok bool) { return v.m, v.kind == KindMap }

// Equal reports structural, kind-sensitive equality.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindMap:
		return v.m.Equal(other.m)
	default:
		return true // two zero Values
	}
}

// Equal reports key-wise structural equality of two bags.
// A nil bag equals an empty bag.
func (a Attrs) Equal(other Attrs) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the bag (nested maps are copied as well).
// Cloning nil returns nil.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		if v.kind == KindMap {
			v.m = v.m.Clone()
		}
		out[k] = v
	}

	return out
}

// Keys returns the bag's keys sorted ascending (stable enumeration surface).
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// MarshalJSON encodes the Value as its natural JSON form:
// string, number, boolean, or object.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		return json.Marshal(v.m)
	default:
		return nil, fmt.Errorf("%w: zero Value", ErrInvalidAttrValue)
	}
}

// UnmarshalJSON decodes a JSON string, number, boolean, or object into the
// matching Value kind. Arrays and null have no Value kind and are rejected
// with ErrInvalidAttrValue.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := valueFromJSON(raw)
	if err != nil {
		return err
	}
	*v = decoded

	return nil
}

// valueFromJSON converts a decoded JSON value into a tagged Value.
func valueFromJSON(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case map[string]interface{}:
		m := make(Attrs, len(t))
		for k, nested := range t {
			nv, err := valueFromJSON(nested)
			if err != nil {
				return Value{}, err
			}
			m[k] = nv
		}

		return Map(m), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrInvalidAttrValue, raw)
	}
}
