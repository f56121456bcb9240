package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
)

// WriteCSV writes a slice of flat DTOs as CSV: a header row of column names
// derived from the struct fields (json tag when present), then one row per
// item. Nothing is written for an empty slice.
func WriteCSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}

	itemType := reflect.TypeOf(items[0])
	if itemType.Kind() != reflect.Struct {
		return fmt.Errorf("csv export expects a struct item, got %s", itemType.Kind())
	}

	fields := exportableFields(itemType)
	header := make([]string, 0, len(fields))
	for _, field := range fields {
		header = append(header, columnName(field))
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(fields))
	for _, item := range items {
		value := reflect.ValueOf(item)
		for i, field := range fields {
			row[i] = formatValue(value.FieldByIndex(field.Index))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportableFields(itemType reflect.Type) []reflect.StructField {
	fields := make([]reflect.StructField, 0, itemType.NumField())
	for _, field := range reflect.VisibleFields(itemType) {
		if field.IsExported() && !field.Anonymous {
			fields = append(fields, field)
		}
	}
	return fields
}

func columnName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if name, _, found := strings.Cut(tag, ","); found {
		if name == "" {
			return field.Name
		}
		return name
	}
	return tag
}

func formatValue(value reflect.Value) string {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if t, ok := value.Interface().(time.Time); ok {
		return t.Format(time.RFC3339)
	}

	return fmt.Sprintf("%v", value.Interface())
}
