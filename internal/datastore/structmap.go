package datastore

import (
	"reflect"
	"strings"
	"time"
	"unicode"
)

// StructToMapOptions configures StructToMap behavior.
type StructToMapOptions struct {
	KeyOverrides     map[string]string
	JoinStringSlices bool
}

// StructToMap converts a struct into a map keyed by snake_case field names.
// Nil pointers become nil, times become RFC 3339 strings and, with
// JoinStringSlices, string slices become comma-separated text.
func StructToMap[T any](value T, opts StructToMapOptions) map[string]any {
	result := make(map[string]any)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return result
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key := toSnakeCase(field.Name)
		if override, ok := opts.KeyOverrides[field.Name]; ok {
			key = override
		}
		result[key] = normalizeValue(v.Field(i), opts)
	}
	return result
}

func normalizeValue(value reflect.Value, opts StructToMapOptions) any {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	if value.Type() == reflect.TypeOf(time.Time{}) {
		return value.Interface().(time.Time).UTC().Format(time.RFC3339)
	}

	if opts.JoinStringSlices && value.Kind() == reflect.Slice && value.Type().Elem().Kind() == reflect.String {
		if value.Len() == 0 {
			return nil
		}
		items := make([]string, value.Len())
		for i := 0; i < value.Len(); i++ {
			items[i] = value.Index(i).String()
		}
		return strings.Join(items, ", ")
	}

	return value.Interface()
}

// toSnakeCase keeps acronyms together: IMDbRating -> imdb_rating, PosterURL -> poster_url.
func toSnakeCase(input string) string {
	runes := []rune(input)
	var builder strings.Builder
	builder.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			var next, nextNext rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if i+2 < len(runes) {
				nextNext = runes[i+2]
			}
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				builder.WriteRune('_')
			case unicode.IsUpper(prev) && next != 0 && unicode.IsLower(next) && (nextNext == 0 || !unicode.IsUpper(nextNext)):
				builder.WriteRune('_')
			}
		}
		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}
