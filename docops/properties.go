package docops

import (
	"fmt"
	"reflect"
)

// mergeProperties applies entries, in order, onto a shallow copy of
// props (a pointer to one of doctree's *Props structs; nil is returned
// unchanged when entries is empty and is an error otherwise). A
// PropertyDelete value resets that field to its zero value; any other
// value is assigned if it is assignable or convertible to the field's
// type. Keys are
// matched against exported struct field names.
//
// This is the one place the package reaches for reflection: the
// property record types are concrete structs (see doctree/props.go),
// chosen so that normal Go code reads and writes them directly; only
// set_properties' generic string-keyed update needs to go through
// reflect, the same tradeoff the teacher library makes in its own
// struct-tag-driven dictionary decoder for PDF objects.
func mergeProperties(props any, entries []PropertyEntry) (any, error) {
	if len(entries) == 0 {
		return props, nil
	}
	if props == nil {
		return nil, fmt.Errorf("docops: set_properties on a node with no property record")
	}
	v := reflect.ValueOf(props)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("docops: set_properties requires a pointer-to-struct property record, got %T", props)
	}
	clone := reflect.New(v.Elem().Type())
	clone.Elem().Set(v.Elem())

	for _, entry := range entries {
		field := clone.Elem().FieldByName(entry.Key)
		if !field.IsValid() {
			return nil, fmt.Errorf("docops: unknown property field %q on %T", entry.Key, props)
		}
		if _, isDelete := entry.Value.(propertyDelete); isDelete {
			field.Set(reflect.Zero(field.Type()))
			continue
		}
		val := reflect.ValueOf(entry.Value)
		if !val.Type().AssignableTo(field.Type()) {
			if val.Type().ConvertibleTo(field.Type()) {
				val = val.Convert(field.Type())
			} else {
				return nil, fmt.Errorf("docops: property %q value %v not assignable to %s", entry.Key, entry.Value, field.Type())
			}
		}
		field.Set(val)
	}
	return clone.Interface(), nil
}
