package internal

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// idField is the conventional record-identifier field. It is assigned by the
// database rather than set by the application, so field extraction skips it.
const idField = "id"

// FieldNames returns the query-language field names of a struct's exported
// fields, in declaration order. A field's name comes from its json tag when
// one is present, falling back to the snake_cased Go field name. Fields
// tagged `json:"-"` and the record identifier are skipped; embedded structs
// are flattened in place.
func FieldNames(v any) []string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return structFieldNames(t)
}

func structFieldNames(t reflect.Type) []string {
	names := []string{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			names = append(names, structFieldNames(f.Type)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, ok := fieldName(f)
		if !ok || name == idField {
			continue
		}
		names = append(names, name)
	}
	return names
}

func fieldName(field reflect.StructField) (string, bool) {
	if tag, ok := field.Tag.Lookup("json"); ok {
		name := strings.Split(tag, ",")[0]
		if name == "-" {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
	return strcase.ToSnake(field.Name), true
}
