package props

import (
	"encoding/json"
	"fmt"
)

// Tag identifies which member of a Value is populated.
type Tag int

const (
	Invalid Tag = iota
	String
	Number
	Bool
	Array
)

func (t Tag) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Array:
		return "array"
	default:
		return "invalid"
	}
}

// Value is one entry of a property bag. Exactly one of the typed fields is
// meaningful, selected by Tag. Numbers keep whether they were written as
// integers so Int can truncate floats the same way for both.
type Value struct {
	Tag   Tag
	Str   string
	Num   float64
	IsInt bool
	Flag  bool
	Items []Value
}

// Str returns a string Value.
func Str(s string) Value { return Value{Tag: String, Str: s} }

// Num returns a floating point Value.
func Num(f float64) Value { return Value{Tag: Number, Num: f} }

// IntVal returns an integer Value.
func IntVal(n int) Value { return Value{Tag: Number, Num: float64(n), IsInt: true} }

// BoolVal returns a boolean Value.
func BoolVal(b bool) Value { return Value{Tag: Bool, Flag: b} }

// List returns an array Value.
func List(items ...Value) Value { return Value{Tag: Array, Items: items} }

// FromAny converts a decoded JSON/YAML/TOML value into a Value. Objects,
// nulls and anything else unrecognized become Invalid, which every accessor
// treats as absent.
func FromAny(v interface{}) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return Str(x)
	case bool:
		return BoolVal(x)
	case int:
		return IntVal(x)
	case int8:
		return IntVal(int(x))
	case int16:
		return IntVal(int(x))
	case int32:
		return IntVal(int(x))
	case int64:
		return IntVal(int(x))
	case uint:
		return IntVal(int(x))
	case uint8:
		return IntVal(int(x))
	case uint16:
		return IntVal(int(x))
	case uint32:
		return IntVal(int(x))
	case uint64:
		return IntVal(int(x))
	case float32:
		return Num(float64(x))
	case float64:
		return Num(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return IntVal(int(n))
		}
		if f, err := x.Float64(); err == nil {
			return Num(f)
		}
		return Value{}
	case []interface{}:
		items := make([]Value, 0, len(x))
		for _, e := range x {
			items = append(items, FromAny(e))
		}
		return List(items...)
	case []string:
		items := make([]Value, 0, len(x))
		for _, e := range x {
			items = append(items, Str(e))
		}
		return List(items...)
	default:
		return Value{}
	}
}

// Interface converts the Value back into a plain Go value, suitable for
// YAML or JSON encoding. Invalid values become nil.
func (v Value) Interface() interface{} {
	switch v.Tag {
	case String:
		return v.Str
	case Number:
		if v.IsInt {
			return int(v.Num)
		}
		return v.Num
	case Bool:
		return v.Flag
	case Array:
		out := make([]interface{}, len(v.Items))
		for i, it := range v.Items {
			out[i] = it.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the Value as its plain JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes the Value as its plain YAML form.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

func (v Value) GoString() string {
	return fmt.Sprintf("props.Value{%s: %v}", v.Tag, v.Interface())
}
