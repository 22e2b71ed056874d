// Package classnames builds HTML class attribute values from conditional parts.
package classnames

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Join concatenates the truthy values separated by single spaces.
//
// Non-empty strings are kept as-is. Booleans, nil (including nil pointers)
// and zero numbers are dropped; other numbers are formatted. Slices are flattened, and a
// map[string]bool contributes its true keys in sorted order. Leading and
// trailing whitespace of the result is trimmed.
func Join(values ...any) string {
	var b strings.Builder
	appendValues(&b, values)
	return strings.TrimSpace(b.String())
}

func appendValues(b *strings.Builder, values []any) {
	for _, v := range values {
		appendValue(b, v)
	}
}

func appendValue(b *strings.Builder, v any) {
	if isNilPointer(v) {
		return
	}
	switch val := v.(type) {
	case nil, bool:
	case string:
		write(b, val)
	case fmt.Stringer:
		write(b, val.String())
	case int:
		writeNumber(b, val != 0, val)
	case int8:
		writeNumber(b, val != 0, val)
	case int16:
		writeNumber(b, val != 0, val)
	case int32:
		writeNumber(b, val != 0, val)
	case int64:
		writeNumber(b, val != 0, val)
	case uint:
		writeNumber(b, val != 0, val)
	case uint8:
		writeNumber(b, val != 0, val)
	case uint16:
		writeNumber(b, val != 0, val)
	case uint32:
		writeNumber(b, val != 0, val)
	case uint64:
		writeNumber(b, val != 0, val)
	case float32:
		writeNumber(b, val != 0, val)
	case float64:
		writeNumber(b, val != 0, val)
	case []string:
		for _, s := range val {
			write(b, s)
		}
	case []any:
		appendValues(b, val)
	case map[string]bool:
		keys := make([]string, 0, len(val))
		for k, on := range val {
			if on {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			write(b, k)
		}
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func writeNumber(b *strings.Builder, truthy bool, n any) {
	if truthy {
		write(b, fmt.Sprint(n))
	}
}

func write(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}
