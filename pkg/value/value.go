// Package value provides the canonical value model for the matchers
// library. Raw inputs are normalized onto a small closed set of kinds
// before any matching rule runs: character buffers become text,
// fixed-size arrays become ordered sequences, maps become associative
// pair lists, and pointer-shaped values stay distinct so that only
// pointer-aware rules apply to them.
package value

import "reflect"

// Kind identifies the canonical shape of a normalized value.
type Kind int

const (
	// KindInvalid marks the zero Value.
	KindInvalid Kind = iota
	// KindNil is the untyped nil literal.
	KindNil
	// KindBool is a boolean scalar.
	KindBool
	// KindInt is a signed integer scalar of any width.
	KindInt
	// KindUint is an unsigned integer scalar of any width.
	KindUint
	// KindFloat is a floating-point scalar of any width.
	KindFloat
	// KindText is a string or a character buffer ([]byte, []rune and
	// their fixed-size array forms).
	KindText
	// KindSequence is an ordered sequence (slice or array).
	KindSequence
	// KindAssoc is an associative value (map), materialized as pairs.
	KindAssoc
	// KindPointer is a pointer-shaped value.
	KindPointer
	// KindOpaque covers everything else (structs, channels, funcs).
	KindOpaque
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindUint:
		return "unsigned integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindAssoc:
		return "associative"
	case KindPointer:
		return "pointer"
	case KindOpaque:
		return "opaque"
	default:
		return "invalid"
	}
}

// Pair is a single entry of an associative value.
type Pair struct {
	Key any
	Val any
}

// Value is the normalized view of an arbitrary Go value. A Value is
// immutable once built and safe to share between goroutines.
type Value struct {
	kind     Kind
	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64
	text     string
	seq      []any
	pairs    []Pair
	nilable  bool
	isNil    bool
	raw      any
}

// Of normalizes v onto the canonical kind set. Sequence elements are
// copied out of the input, never aliased.
func Of(v any) Value {
	if v == nil {
		return Value{kind: KindNil, nilable: true, isNil: true}
	}

	switch x := v.(type) {
	case string:
		return Value{kind: KindText, text: x, raw: v}
	case []byte:
		return Value{kind: KindText, text: string(x), nilable: true, isNil: x == nil, raw: v}
	case []rune:
		return Value{kind: KindText, text: string(x), nilable: true, isNil: x == nil, raw: v}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Value{kind: KindBool, boolVal: rv.Bool(), raw: v}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindInt, intVal: rv.Int(), raw: v}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindUint, uintVal: rv.Uint(), raw: v}
	case reflect.Float32, reflect.Float64:
		return Value{kind: KindFloat, floatVal: rv.Float(), raw: v}
	case reflect.String:
		return Value{kind: KindText, text: rv.String(), raw: v}
	case reflect.Slice, reflect.Array:
		return ofSequence(rv, v)
	case reflect.Map:
		return ofAssoc(rv, v)
	case reflect.Ptr:
		return Value{kind: KindPointer, nilable: true, isNil: rv.IsNil(), raw: v}
	case reflect.Chan, reflect.Func:
		return Value{kind: KindOpaque, nilable: true, isNil: rv.IsNil(), raw: v}
	default:
		return Value{kind: KindOpaque, raw: v}
	}
}

// ofSequence normalizes slices and arrays. Byte and rune buffers
// canonicalize to text; everything else becomes a copied sequence.
func ofSequence(rv reflect.Value, raw any) Value {
	nilable := rv.Kind() == reflect.Slice
	isNil := nilable && rv.IsNil()

	switch rv.Type().Elem().Kind() {
	case reflect.Uint8:
		buf := make([]byte, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			buf[i] = byte(rv.Index(i).Uint())
		}
		return Value{kind: KindText, text: string(buf), nilable: nilable, isNil: isNil, raw: raw}
	case reflect.Int32:
		runes := make([]rune, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			runes[i] = rune(rv.Index(i).Int())
		}
		return Value{kind: KindText, text: string(runes), nilable: nilable, isNil: isNil, raw: raw}
	}

	seq := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		seq[i] = rv.Index(i).Interface()
	}
	return Value{kind: KindSequence, seq: seq, nilable: nilable, isNil: isNil, raw: raw}
}

// ofAssoc normalizes maps into pair lists.
func ofAssoc(rv reflect.Value, raw any) Value {
	pairs := make([]Pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, Pair{
			Key: iter.Key().Interface(),
			Val: iter.Value().Interface(),
		})
	}
	return Value{kind: KindAssoc, pairs: pairs, nilable: true, isNil: rv.IsNil(), raw: raw}
}

// Kind returns the canonical kind.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload of a KindBool value.
func (v Value) Bool() bool { return v.boolVal }

// Int returns the canonical signed payload of a KindInt value.
func (v Value) Int() int64 { return v.intVal }

// Uint returns the canonical unsigned payload of a KindUint value.
func (v Value) Uint() uint64 { return v.uintVal }

// Float returns the canonical float payload of a KindFloat value.
func (v Value) Float() float64 { return v.floatVal }

// Text returns the text payload of a KindText value.
func (v Value) Text() string { return v.text }

// Seq returns the copied elements of a KindSequence value.
func (v Value) Seq() []any { return v.seq }

// Pairs returns the entries of a KindAssoc value.
func (v Value) Pairs() []Pair { return v.pairs }

// Nilable reports whether the underlying shape can hold nil.
func (v Value) Nilable() bool { return v.nilable }

// IsNil reports whether a nilable value is nil.
func (v Value) IsNil() bool { return v.isNil }

// Interface returns the original raw value, nil for KindNil.
func (v Value) Interface() any { return v.raw }

// Comparable reports whether two normalized values can be matched
// against each other at all. Same-kind values are always comparable,
// and the nil literal is comparable with any nilable shape.
func Comparable(a, b Value) bool {
	if a.kind == KindInvalid || b.kind == KindInvalid {
		return false
	}
	if a.kind == b.kind {
		return true
	}
	if a.kind == KindNil && b.nilable {
		return true
	}
	if b.kind == KindNil && a.nilable {
		return true
	}
	return false
}

// Equal reports whether two raw values are equal under the canonical
// model: scalars compare by canonical representation, text by content,
// sequences element-wise, associative values structurally, pointers by
// identity. Plain records without defined equality fall back to
// structural comparison. Incompatible kinds are never equal.
func Equal(x, y any) bool {
	return equalValues(Of(x), Of(y))
}

func equalValues(a, b Value) bool {
	if a.kind == KindNil || b.kind == KindNil {
		return a.isNil && b.isNil
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal == b.intVal
	case KindUint:
		return a.uintVal == b.uintVal
	case KindFloat:
		return a.floatVal == b.floatVal
	case KindText:
		return a.text == b.text
	case KindSequence:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case KindAssoc:
		if len(a.pairs) != len(b.pairs) {
			return false
		}
		return reflect.DeepEqual(a.raw, b.raw)
	case KindPointer:
		if a.isNil || b.isNil {
			return a.isNil && b.isNil
		}
		return reflect.ValueOf(a.raw).Pointer() == reflect.ValueOf(b.raw).Pointer()
	default:
		ta := reflect.TypeOf(a.raw)
		tb := reflect.TypeOf(b.raw)
		if ta == tb && ta.Comparable() {
			return a.raw == b.raw
		}
		return reflect.DeepEqual(a.raw, b.raw)
	}
}
