// Package dynfield provides dynamic struct field access by name, with a
// cached per-type field index so repeated lookups avoid reflection walks.
package dynfield

import (
	"fmt"
	"reflect"
	"sync"
)

// fieldIndex maps exported field names to their reflect index paths,
// including fields promoted from embedded structs.
type fieldIndex map[string][]int

// typeCache caches one fieldIndex per struct type.
var typeCache sync.Map // reflect.Type -> fieldIndex

// convertCache caches convertibility checks between type pairs.
var convertCache sync.Map // [2]reflect.Type -> bool

// indexFor returns the cached field index for t, building it on first use.
func indexFor(t reflect.Type) fieldIndex {
	if cached, ok := typeCache.Load(t); ok {
		return cached.(fieldIndex)
	}

	idx := make(fieldIndex)
	var walk func(t reflect.Type, path []int)
	walk = func(t reflect.Type, path []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fieldPath := append(append([]int(nil), path...), i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				walk(f.Type, fieldPath)
				continue
			}
			if !f.IsExported() {
				continue
			}
			// Shallower paths win name collisions, matching Go's own
			// promotion rules for unambiguous selectors.
			if existing, ok := idx[f.Name]; ok && len(existing) <= len(fieldPath) {
				continue
			}
			idx[f.Name] = fieldPath
		}
	}
	walk(t, nil)

	cached, _ := typeCache.LoadOrStore(t, idx)
	return cached.(fieldIndex)
}

// structValue unwraps target down to an addressable-or-not struct value.
func structValue(target any) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("dynfield: nil pointer target")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("dynfield: target is %s, want struct", v.Kind())
	}
	return v, nil
}

// Get returns the value of the named exported field of target, which must
// be a struct or pointer to struct. Promoted fields of embedded structs are
// visible under their own names.
func Get(target any, name string) (any, error) {
	v, err := structValue(target)
	if err != nil {
		return nil, err
	}
	path, ok := indexFor(v.Type())[name]
	if !ok {
		return nil, fmt.Errorf("dynfield: %s has no exported field %q", v.Type(), name)
	}
	return v.FieldByIndex(path).Interface(), nil
}

// Set assigns value to the named exported field of target, which must be a
// pointer to struct. The value is converted to the field type when the
// conversion is allowed; incompatible types fail with an error.
func Set(target any, name string, value any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("dynfield: Set target must be a non-nil pointer to struct")
	}
	v, err := structValue(target)
	if err != nil {
		return err
	}
	path, ok := indexFor(v.Type())[name]
	if !ok {
		return fmt.Errorf("dynfield: %s has no exported field %q", v.Type(), name)
	}

	field := v.FieldByIndex(path)
	val := reflect.ValueOf(value)
	if value == nil {
		// Allow clearing nilable fields.
		switch field.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			field.Set(reflect.Zero(field.Type()))
			return nil
		}
		return fmt.Errorf("dynfield: cannot assign nil to %s field %q", field.Type(), name)
	}

	if val.Type() != field.Type() {
		if !canConvert(val.Type(), field.Type()) {
			return fmt.Errorf("dynfield: cannot assign %s to %s field %q", val.Type(), field.Type(), name)
		}
		val = val.Convert(field.Type())
	}
	field.Set(val)
	return nil
}

// canConvert reports whether from can be assigned or converted to to, using
// the cached answer when one exists.
func canConvert(from, to reflect.Type) bool {
	key := [2]reflect.Type{from, to}
	if cached, ok := convertCache.Load(key); ok {
		return cached.(bool)
	}
	ok := from.AssignableTo(to) || from.ConvertibleTo(to)
	convertCache.Store(key, ok)
	return ok
}

// Fields returns the names of the exported fields of target's struct type,
// including promoted fields.
func Fields(target any) ([]string, error) {
	v, err := structValue(target)
	if err != nil {
		return nil, err
	}
	idx := indexFor(v.Type())
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	return names, nil
}
