package content

import (
	"fmt"
	"sort"
)

// FromValue converts a loosely-shaped value into Content. This is the
// entry point for YAML bundles and extension provider results, where
// shape is carried by the data rather than by a declared type.
//
// Rules:
//   - nil yields nil ("no content")
//   - *Content and Content pass through
//   - strings become text leaves
//   - slices become the ordered part of a structured node
//   - maps split into parts: contiguous integer keys starting at 1 form
//     the ordered part, every other key lands in the named part
//   - anything else is rendered to text with fmt
func FromValue(v interface{}) *Content {
	switch val := v.(type) {
	case nil:
		return nil
	case *Content:
		return val
	case Content:
		return &val
	case string:
		return NewText(val)
	case []interface{}:
		entries := make([]*Content, 0, len(val))
		for _, e := range val {
			entries = append(entries, FromValue(e))
		}
		return NewList(entries...)
	case map[string]interface{}:
		m := make(map[interface{}]interface{}, len(val))
		for k, e := range val {
			m[k] = e
		}
		return fromMap(m)
	case map[interface{}]interface{}:
		return fromMap(val)
	default:
		return NewText(fmt.Sprint(val))
	}
}

// fromMap splits a map into ordered and named parts. Integer keys that
// form a contiguous run starting at 1 are the ordered part.
func fromMap(m map[interface{}]interface{}) *Content {
	indexed := make(map[int]interface{})
	named := make(map[string]interface{})

	for k, v := range m {
		if i, ok := intKey(k); ok {
			indexed[i] = v
			continue
		}
		named[fmt.Sprint(k)] = v
	}

	out := &Content{}

	// Only a contiguous 1-based run counts as the ordered part; gaps
	// demote the whole indexed set to named entries.
	if contiguousFromOne(indexed) {
		for i := 1; i <= len(indexed); i++ {
			out.Ordered = append(out.Ordered, FromValue(indexed[i]))
		}
	} else {
		for i, v := range indexed {
			named[fmt.Sprint(i)] = v
		}
	}

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out.Set(name, FromValue(named[name]))
	}
	return out
}

func intKey(k interface{}) (int, bool) {
	switch i := k.(type) {
	case int:
		return i, true
	case int64:
		return int(i), true
	case uint64:
		return int(i), true
	}
	return 0, false
}

func contiguousFromOne(indexed map[int]interface{}) bool {
	if len(indexed) == 0 {
		return false
	}
	for i := 1; i <= len(indexed); i++ {
		if _, ok := indexed[i]; !ok {
			return false
		}
	}
	return true
}
