package htmler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// maxDecodeDepth bounds conversion so cyclic Go data fails instead of
// exhausting the stack.
const maxDecodeDepth = 10000

// YAML tags recognized by [DecodeYAML].
const (
	TagOrdered  = "!ol"
	TagHeader   = "!th"
	TagEmphasis = "!em"
)

// From converts ordinary Go data into a [Value].
//
// Values pass through unchanged. Strings, booleans, numbers, and
// [fmt.Stringer] implementations become [Text]; nil becomes empty text.
// Slices and arrays become a [List] ([]byte becomes text), maps become a
// [Map] keyed by the formatted key, and structs become a [Map] of their
// exported fields. A field tagged `htmler:"name"` is renamed and
// `htmler:"-"` is skipped. Pointers and interfaces are followed, including
// pointers to Values.
func From(v any) (Value, error) {
	return fromReflect(reflect.ValueOf(v), 0)
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func fromReflect(rv reflect.Value, depth int) (Value, error) {
	if depth > maxDecodeDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels", ErrTooDeep, maxDecodeDepth)
	}
	if !rv.IsValid() {
		return Text(""), nil
	}
	if rv.CanInterface() {
		// *Text and friends satisfy Value through the pointer method set but
		// are not renderable; they are followed below.
		if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
			if v, ok := rv.Interface().(Value); ok {
				return v, nil
			}
		}
		if rv.Type().Implements(stringerType) && !isNilPointer(rv) {
			return Text(rv.Interface().(fmt.Stringer).String()), nil
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Text(""), nil
		}
		return fromReflect(rv.Elem(), depth+1)
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Bool:
		return Text(strconv.FormatBool(rv.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Text(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Text(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return Text(formatFloat(rv.Float(), rv.Type().Bits())), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Text(rv.Bytes()), nil
		}
		return fromSeq(rv, depth)
	case reflect.Array:
		return fromSeq(rv, depth)
	case reflect.Map:
		return fromMap(rv, depth)
	case reflect.Struct:
		return fromStruct(rv, depth)
	default:
		if rv.CanInterface() {
			return Text(fmt.Sprint(rv.Interface())), nil
		}
		return Text(""), nil
	}
}

func fromSeq(rv reflect.Value, depth int) (Value, error) {
	out := make(List, rv.Len())
	for i := range rv.Len() {
		v, err := fromReflect(rv.Index(i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func fromMap(rv reflect.Value, depth int) (Value, error) {
	out := make(Map, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		v, err := fromReflect(iter.Value(), depth+1)
		if err != nil {
			return nil, err
		}
		out[mapKey(iter.Key())] = v
	}
	return out, nil
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

func fromStruct(rv reflect.Value, depth int) (Value, error) {
	t := rv.Type()
	out := make(Map, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("htmler"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		v, err := fromReflect(rv.Field(i), depth+1)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

func isNilPointer(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// formatFloat prints integral values without an exponent so that JSON
// numbers like 12 render as "12".
func formatFloat(f float64, bits int) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// jsonAPI keeps numbers as their literal text so integers beyond 2^53
// survive decoding.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

// DecodeJSON decodes a JSON document into a [Value]. Numbers render exactly
// as written in the source.
func DecodeJSON(data []byte) (Value, error) {
	var raw any
	if err := jsonAPI.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: json: %s", ErrDecode, err)
	}
	return From(raw)
}

// DecodeYAML decodes every document in a YAML stream into a [Value].
//
// Local tags select the markers that plain YAML cannot express:
//
//	!ol  sequence   → OrderedList
//	!th  any node   → HeaderCell
//	!em  scalar     → Emphasis
//	!h1…!h6 scalar  → Heading
//
// Aliases resolve to their anchored node, merge keys (<<) copy the entries
// of the merged mappings, and null scalars become empty text. Keys written
// in a mapping override merged ones, and earlier merge sources override
// later ones. JSON is valid input.
func DecodeYAML(data []byte) ([]Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []Value
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("%w: yaml: %s", ErrDecode, err)
		}
		v, err := fromNode(&doc, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func fromNode(n *yaml.Node, depth int) (Value, error) {
	if depth > maxDecodeDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels", ErrTooDeep, maxDecodeDepth)
	}
	if n == nil {
		return Text(""), nil
	}

	var v Value
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Text(""), nil
		}
		return fromNode(n.Content[0], depth+1)
	case yaml.AliasNode:
		return fromNode(n.Alias, depth+1)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			v = Text("")
		} else {
			v = Text(n.Value)
		}
	case yaml.SequenceNode:
		items := make(List, len(n.Content))
		for i, c := range n.Content {
			item, err := fromNode(c, depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		v = items
	case yaml.MappingNode:
		m := make(Map, len(n.Content)/2)
		var merged Map
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind == yaml.AliasNode && key.Alias != nil {
				key = key.Alias
			}
			item, err := fromNode(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			if key.ShortTag() == "!!merge" {
				if merged == nil {
					merged = make(Map)
				}
				mergeInto(merged, item)
				continue
			}
			m[key.Value] = item
		}
		for k, item := range merged {
			if _, ok := m[k]; !ok {
				m[k] = item
			}
		}
		v = m
	default:
		return Text(""), nil
	}
	return applyTag(n.Tag, v), nil
}

// mergeInto copies the entries of a merge source into dst. The source is a
// mapping or a sequence of mappings; keys already in dst are kept.
func mergeInto(dst Map, src Value) {
	switch src := src.(type) {
	case Map:
		for k, item := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = item
			}
		}
	case List:
		for _, s := range src {
			mergeInto(dst, s)
		}
	}
}

// applyTag wraps v according to a local YAML tag. Tags that do not fit the
// node kind are ignored.
func applyTag(tag string, v Value) Value {
	switch tag {
	case TagHeader:
		return HeaderCell{Value: v}
	case TagOrdered:
		if l, ok := v.(List); ok {
			return OrderedList(l)
		}
	case TagEmphasis:
		if t, ok := v.(Text); ok {
			return Emphasis(t)
		}
	default:
		if level, ok := headingLevel(tag); ok {
			if t, ok := v.(Text); ok {
				return Heading{Level: level, Text: string(t)}
			}
		}
	}
	return v
}

func headingLevel(tag string) (int, bool) {
	if len(tag) != 3 || tag[0] != '!' || tag[1] != 'h' {
		return 0, false
	}
	level := int(tag[2] - '0')
	if level < 1 || level > 6 {
		return 0, false
	}
	return level, true
}
