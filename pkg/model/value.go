package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// AttributeValue resolves the current value of a named attribute on a bound
// object. Maps are looked up by key; structs are probed by exported field
// name, matching snake_case attribute names against CamelCase fields. The
// second return is false when the object is nil or the attribute cannot be
// located.
func AttributeValue(object any, name string) (any, bool) {
	if object == nil || name == "" {
		return nil, false
	}

	if mapped, ok := object.(map[string]any); ok {
		value, exists := mapped[name]
		return value, exists
	}

	rv := reflect.ValueOf(object)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	target := fieldName(name)
	field := rv.FieldByNameFunc(func(candidate string) bool {
		return candidate == target || strings.EqualFold(candidate, target)
	})
	if !field.IsValid() || !field.CanInterface() {
		return nil, false
	}
	return field.Interface(), true
}

// RespondsTo reports whether the object (or its pointer) exposes a method
// with the given name. The resolver uses this to probe file-like values.
func RespondsTo(object any, method string) bool {
	if object == nil || method == "" {
		return false
	}
	rv := reflect.ValueOf(object)
	if rv.MethodByName(method).IsValid() {
		return true
	}
	if rv.Kind() != reflect.Pointer {
		_, ok := reflect.PointerTo(rv.Type()).MethodByName(method)
		return ok
	}
	return false
}

// FormatValue renders an attribute value for an HTML value attribute. Nil
// and nil pointers become the empty string; times use RFC 3339 so datetime
// controls can parse them back.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.RFC3339)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format(time.RFC3339)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	return fmt.Sprintf("%v", rv.Interface())
}

// fieldName converts a snake_case attribute name into the CamelCase field
// name convention used by Go structs.
func fieldName(name string) string {
	parts := strings.Split(name, "_")
	var out strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if part == "id" {
			out.WriteString("ID")
			continue
		}
		out.WriteString(strings.ToUpper(part[:1]))
		out.WriteString(part[1:])
	}
	return out.String()
}
