package vdom

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// number is satisfied by json.Number and compatible decoder number types.
type number interface {
	Float64() (float64, error)
	String() string
}

// pushSequence pushes the elements of v onto stack in reverse order and
// reports whether v was a sequence at all. Byte slices are text, not
// sequences.
func pushSequence(stack []any, v any) ([]any, bool) {
	switch s := v.(type) {
	case nil, string, []byte:
		return stack, false
	case []any:
		for i := len(s) - 1; i >= 0; i-- {
			stack = append(stack, s[i])
		}
		return stack, true
	case Children:
		for i := len(s.items) - 1; i >= 0; i-- {
			stack = append(stack, s.items[i])
		}
		return stack, true
	case []*VNode:
		for i := len(s) - 1; i >= 0; i-- {
			stack = append(stack, s[i])
		}
		return stack, true
	case []string:
		for i := len(s) - 1; i >= 0; i-- {
			stack = append(stack, s[i])
		}
		return stack, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return stack, false
		}
		for i := rv.Len() - 1; i >= 0; i-- {
			stack = append(stack, rv.Index(i).Interface())
		}
		return stack, true
	}
	return stack, false
}

// isBool reports whether v is a boolean, including named bool types.
func isBool(v any) bool {
	if _, ok := v.(bool); ok {
		return true
	}
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
}

// simpleText returns the text form of a leaf owned by a tag node and whether
// the leaf is simple. Nil values are simple and render as "".
func simpleText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case []byte:
		return string(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return formatNumber(x, 64), true
	case *VNode:
		return "", x == nil
	case number:
		return numberText(x), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return formatNumber(rv.Float(), 32), true
	case reflect.Float64:
		return formatNumber(rv.Float(), 64), true
	case reflect.Slice:
		// Only byte slices reach here; other slices are sequences.
		return string(rv.Bytes()), true
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return "", true
		}
	}
	return "", false
}

func numberText(n number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return formatNumber(f, 64)
}

// formatNumber renders f in canonical decimal form: shortest round-trip
// digits, fixed notation for 1e-6 <= |f| < 1e21 and exponent notation
// outside that range.
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
