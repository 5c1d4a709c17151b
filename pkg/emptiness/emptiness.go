// Package emptiness implements the empty-value classification used by the
// check-empty API. Input values arrive as arbitrary JSON, so they are modeled
// as a closed tagged variant rather than a raw interface value.
package emptiness

import (
	"strings"

	"github.com/goccy/go-json"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindAbsent marks a value that was missing or JSON null.
	KindAbsent Kind = iota

	// KindString marks a text value.
	KindString

	// KindSequence marks an ordered collection (JSON array).
	KindSequence

	// KindSet marks an unordered collection. JSON has no set encoding, so
	// this variant is never produced when decoding request bodies; it exists
	// for callers constructing values directly.
	KindSet

	// KindMapping marks a key-value collection (JSON object).
	KindMapping

	// KindOther marks everything else (numbers, booleans). These values are
	// never considered empty.
	KindOther
)

// Value is a tagged variant over the inputs the classifier accepts.
// The zero Value is the absent variant.
type Value struct {
	kind     Kind
	str      string
	elements []Value
	mapping  map[string]Value
	other    interface{}
}

// Absent returns the absent/null variant.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// String returns a string variant holding s.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Sequence returns an ordered-collection variant holding the given elements.
func Sequence(elements ...Value) Value {
	return Value{kind: KindSequence, elements: elements}
}

// Set returns an unordered-collection variant holding the given elements.
func Set(elements ...Value) Value {
	return Value{kind: KindSet, elements: elements}
}

// Mapping returns a key-value variant holding m.
func Mapping(m map[string]Value) Value {
	return Value{kind: KindMapping, mapping: m}
}

// Other returns the catch-all variant wrapping v (numbers, booleans, or any
// value outside the enumerated kinds).
func Other(v interface{}) Value {
	return Value{kind: KindOther, other: v}
}

// Kind returns the variant tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Len returns the element count for sequence, set, and mapping variants,
// and 0 for everything else.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence, KindSet:
		return len(v.elements)
	case KindMapping:
		return len(v.mapping)
	default:
		return 0
	}
}

// UnmarshalJSON decodes an arbitrary JSON value into the matching variant.
// JSON null becomes the absent variant, arrays become sequences, objects
// become mappings, and anything else (numbers, booleans) becomes "other".
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = fromDecoded(raw)
	return nil
}

func fromDecoded(raw interface{}) Value {
	switch x := raw.(type) {
	case nil:
		return Absent()
	case string:
		return String(x)
	case []interface{}:
		elements := make([]Value, len(x))
		for i, e := range x {
			elements[i] = fromDecoded(e)
		}
		return Sequence(elements...)
	case map[string]interface{}:
		mapping := make(map[string]Value, len(x))
		for k, e := range x {
			mapping[k] = fromDecoded(e)
		}
		return Mapping(mapping)
	default:
		return Other(x)
	}
}

// Classify reports whether v is empty. A value is empty when it is absent,
// a string with no content after trimming leading and trailing whitespace,
// or a sequence, set, or mapping with zero elements. All other values,
// including numbers and booleans, are not empty.
func Classify(v Value) bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindString:
		return strings.TrimSpace(v.str) == ""
	case KindSequence, KindSet, KindMapping:
		return v.Len() == 0
	default:
		return false
	}
}
