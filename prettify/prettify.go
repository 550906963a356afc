// Package prettify converts arbitrary values into display strings for
// diagnostic messages.
//
// The default prettifier quotes strings, renders fmt.Stringer values
// verbatim, and recursively formats slices, arrays, and maps with a
// deterministic element order so that rendering the same value twice
// produces identical output.
package prettify

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Prettifier converts an arbitrary value into a display string.
type Prettifier func(value any) string

// Default is the prettifier used when none is configured.
var Default Prettifier = prettify

// Ellipsis terminates output truncated by a Truncating prettifier.
const Ellipsis = "..."

// Truncating wraps a prettifier so its output never exceeds limit runes.
// Truncated output ends with Ellipsis. A non-positive limit disables
// truncation. A nil inner prettifier falls back to Default.
func Truncating(inner Prettifier, limit int) Prettifier {
	if inner == nil {
		inner = Default
	}
	return func(value any) string {
		out := inner(value)
		if limit <= 0 {
			return out
		}
		runes := []rune(out)
		if len(runes) <= limit {
			return out
		}
		return string(runes[:limit]) + Ellipsis
	}
}

func prettify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return prettifySequence(rv)
	case reflect.Map:
		return prettifyMap(rv)
	case reflect.Ptr:
		if rv.IsNil() {
			return "nil"
		}
		return prettify(rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", value)
}

func prettifySequence(rv reflect.Value) string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(prettify(rv.Index(i).Interface()))
	}
	b.WriteString("]")
	return b.String()
}

func prettifyMap(rv reflect.Value) string {
	entries := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := prettify(iter.Key().Interface())
		value := prettify(iter.Value().Interface())
		entries = append(entries, key+": "+value)
	}
	sort.Strings(entries)
	return "{" + strings.Join(entries, ", ") + "}"
}
