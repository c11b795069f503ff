package entities

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"sitecopy/internal/domain/keypath"
)

// Field is one named entry of a sub-structure.
type Field struct {
	Key   string
	Value any
}

var tableType = reflect.TypeOf(LocaleTable{})

// Ordered returns v, the generic value found at keyPath in a LocaleTable,
// with every mapping replaced by a []Field in declaration order. Keys the
// table type does not declare follow in sorted order.
func Ordered(keyPath string, v any) any {
	p, err := keypath.Parse(keyPath)
	if err != nil {
		return order(v, nil)
	}
	typ := tableType
	for _, seg := range p {
		if typ = step(typ, seg); typ == nil {
			break
		}
	}
	return order(v, typ)
}

func step(typ reflect.Type, seg keypath.Segment) reflect.Type {
	switch {
	case seg.IsIdx && typ.Kind() == reflect.Slice:
		return typ.Elem()
	case !seg.IsIdx && typ.Kind() == reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if f := typ.Field(i); jsonName(f) == seg.Key {
				return f.Type
			}
		}
	}
	return nil
}

func order(v any, typ reflect.Type) any {
	switch x := v.(type) {
	case map[string]any:
		out := make([]Field, 0, len(x))
		seen := make(map[string]bool, len(x))
		if typ != nil && typ.Kind() == reflect.Struct {
			for i := 0; i < typ.NumField(); i++ {
				f := typ.Field(i)
				name := jsonName(f)
				if val, ok := x[name]; ok {
					out = append(out, Field{Key: name, Value: order(val, f.Type)})
					seen[name] = true
				}
			}
		}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if !seen[k] {
				out = append(out, Field{Key: k, Value: order(x[k], nil)})
			}
		}
		return out
	case []any:
		var elem reflect.Type
		if typ != nil && typ.Kind() == reflect.Slice {
			elem = typ.Elem()
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = order(e, elem)
		}
		return out
	default:
		return v
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}
