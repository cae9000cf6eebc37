package reactive

import "reflect"

// node is implemented by any channel that can be read in a type-erased
// fashion; both SourceChannel and DerivedChannel satisfy it via their
// unexported readAny method. Unravel uses it to recognize a channel
// embedded at any depth in a nested value, without needing to know the
// channel's element type.
type node interface {
	readAny() any
}

// Unravel recursively replaces any channel within an arbitrary nested
// value with its current read value. Slices and arrays are walked
// element-by-element into a fresh []any; maps are walked into a fresh
// map[any]any; anything else (including a channel's own resolved
// value) is unravelled again until recursion terminates at a scalar
// that is neither a channel, a slice/array, nor a map.
func Unravel(v any) any {
	if n, ok := v.(node); ok {
		return Unravel(n.readAny())
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Unravel(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[any]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().Interface()] = Unravel(iter.Value().Interface())
		}
		return out
	default:
		return v
	}
}
