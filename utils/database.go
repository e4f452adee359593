package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the list of "db" tags of the given struct type, in
// declaration order. Used to keep SELECT column lists in sync with the
// dbmodels structs they are scanned into.
func ColumnList[T any](prefix ...string) []string {
	var value T
	modelType := reflect.TypeOf(value)

	columnNames := make([]string, 0, modelType.NumField())
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		if len(prefix) > 0 {
			tag = fmt.Sprintf("%s.%s", prefix[0], tag)
		}
		columnNames = append(columnNames, tag)
	}
	return columnNames
}
