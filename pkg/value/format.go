package value

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Format renders any value into its diagnostic text form. Text is
// quoted, sequences keep their original element order, associative
// entries are sorted by rendered key so output is deterministic, and
// kinds with no sensible rendering fall through to an explicit
// unknown-type branch.
func Format(v any) string {
	return formatValue(Of(v))
}

func formatValue(v Value) string {
	switch v.Kind() {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindUint:
		return strconv.FormatUint(v.Uint(), 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.Text())
	case KindSequence:
		return formatSequence(v.Seq())
	case KindAssoc:
		return formatAssoc(v.Pairs())
	case KindPointer:
		return formatPointer(v)
	default:
		return formatOpaque(v)
	}
}

func formatSequence(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Format(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatAssoc(pairs []Pair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = Format(p.Key) + ": " + Format(p.Val)
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatPointer(v Value) string {
	if v.IsNil() {
		return "nil"
	}
	return "&" + Format(reflect.ValueOf(v.Interface()).Elem().Interface())
}

// formatOpaque is the default branch of the formatter dispatch. It
// honours fmt.Stringer, renders plain records via the fmt verb, and
// names everything else an unknown type.
func formatOpaque(v Value) string {
	raw := v.Interface()
	if s, ok := raw.(fmt.Stringer); ok {
		return s.String()
	}
	switch reflect.ValueOf(raw).Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return "<unknown-type>"
	}
	return fmt.Sprintf("%v", raw)
}
