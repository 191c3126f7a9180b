package props

import (
	"sort"
	"strings"
)

// Bag is the untyped property map attached to an element. A nil Bag is
// valid and behaves as empty.
type Bag map[string]Value

// FromMap converts a decoded map into a Bag. A nil map yields a nil Bag.
func FromMap(m map[string]interface{}) Bag {
	if m == nil {
		return nil
	}
	b := make(Bag, len(m))
	for k, v := range m {
		b[k] = FromAny(v)
	}
	return b
}

// Clone returns a copy of the bag that shares no arrays with the original.
func (b Bag) Clone() Bag {
	if b == nil {
		return nil
	}
	out := make(Bag, len(b))
	for k, v := range b {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v Value) Value {
	if v.Tag != Array {
		return v
	}
	items := make([]Value, len(v.Items))
	for i, it := range v.Items {
		items[i] = cloneValue(it)
	}
	v.Items = items
	return v
}

// Keys returns the bag's keys in sorted order.
func (b Bag) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the string stored at key, or def if the key is absent or
// holds a non-string value.
func (b Bag) String(key, def string) string {
	if v, ok := b[key]; ok && v.Tag == String {
		return v.Str
	}
	return def
}

// Number returns the number stored at key, or def. Integer and floating
// point storage are both accepted.
func (b Bag) Number(key string, def float64) float64 {
	if v, ok := b[key]; ok && v.Tag == Number {
		return v.Num
	}
	return def
}

// Int returns the number stored at key truncated toward zero, or def.
func (b Bag) Int(key string, def int) int {
	if v, ok := b[key]; ok && v.Tag == Number {
		return int(v.Num)
	}
	return def
}

// Bool returns the boolean stored at key, or def.
func (b Bag) Bool(key string, def bool) bool {
	if v, ok := b[key]; ok && v.Tag == Bool {
		return v.Flag
	}
	return def
}

// Has reports whether key holds a usable value.
func (b Bag) Has(key string) bool {
	v, ok := b[key]
	return ok && v.Tag != Invalid
}

// Strings returns the list stored at key. A string value is split on commas
// with each entry trimmed; an array contributes its string elements in
// order. Anything else yields nil.
func (b Bag) Strings(key string) []string {
	v, ok := b[key]
	if !ok {
		return nil
	}
	switch v.Tag {
	case String:
		if v.Str == "" {
			return nil
		}
		parts := strings.Split(v.Str, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	case Array:
		var out []string
		for _, it := range v.Items {
			if it.Tag == String {
				out = append(out, it.Str)
			}
		}
		return out
	}
	return nil
}
