package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKindsAndAccessors(t *testing.T) {
	s := String("hello")
	n := Number(3.5)
	b := Bool(true)
	m := Map(Attrs{"k": Number(1)})

	assert.Equal(t, KindString, s.Kind())
	assert.Equal(t, KindNumber, n.Kind())
	assert.Equal(t, KindBool, b.Kind())
	assert.Equal(t, KindMap, m.Kind())

	got, ok := s.AsString()
	require.True(t, ok)
	assert.Equal(t, "hello", got)

	_, ok = s.AsNumber()
	assert.False(t, ok, "kind mismatch must report ok=false")

	num, ok := n.AsNumber()
	require.True(t, ok)
	assert.Equal(t, 3.5, num)

	nested, ok := m.AsMap()
	require.True(t, ok)
	assert.Len(t, nested, 1)
}

func TestValueEqualityIsKindSensitive(t *testing.T) {
	assert.False(t, Number(1).Equal(String("1")), "number 1 and string \"1\" differ")
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Bool(true).Equal(Number(1)))
	assert.True(t, Map(Attrs{"a": Bool(true)}).Equal(Map(Attrs{"a": Bool(true)})))
	assert.False(t, Map(Attrs{"a": Bool(true)}).Equal(Map(Attrs{"a": Bool(false)})))
}

func TestAttrsCloneIsDeep(t *testing.T) {
	orig := Attrs{"outer": Map(Attrs{"inner": String("x")})}
	cp := orig.Clone()

	nested, _ := cp["outer"].AsMap()
	nested["inner"] = String("changed")

	origNested, _ := orig["outer"].AsMap()
	v, _ := origNested["inner"].AsString()
	assert.Equal(t, "x", v, "mutating the clone must not touch the original")
}

func TestValueJSONRoundTripPreservesKind(t *testing.T) {
	bag := Attrs{
		"name":   String("42"),
		"count":  Number(42),
		"active": Bool(true),
		"nested": Map(Attrs{"deep": Number(7)}),
	}
	data, err := json.Marshal(bag)
	require.NoError(t, err)

	var back Attrs
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, bag.Equal(back))

	// "42" stayed a string, 42 stayed a number.
	assert.Equal(t, KindString, back["name"].Kind())
	assert.Equal(t, KindNumber, back["count"].Kind())
	assert.Equal(t, KindMap, back["nested"].Kind())
}

func TestValueJSONRejectsArraysAndNull(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`[1,2]`), &v)
	assert.ErrorIs(t, err, ErrInvalidAttrValue)

	err = json.Unmarshal([]byte(`null`), &v)
	assert.ErrorIs(t, err, ErrInvalidAttrValue)
}

func TestAttrsKeysSorted(t *testing.T) {
	bag := Attrs{"b": Number(1), "a": Number(2), "c": Number(3)}
	assert.Equal(t, []string{"a", "b", "c"}, bag.Keys())
}
