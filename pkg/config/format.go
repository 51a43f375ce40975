package config

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// formatFloat renders a float for tool consumption: integral values keep a
// trailing ".0" ("1.0", "500.0"), everything else uses the shortest exact
// form. The downstream parameter parsers distinguish integer and real
// parameters by the decimal point.
func formatFloat(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ToCiaoName rewrites a parameter name to the hyphenated convention some
// CIAO argument parsers expect. Argument rendering keeps the underscore
// form; apply this only for tools whose documented interface requires
// hyphens.
func ToCiaoName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// formatArgValue renders one field value for a name=value argument.
// Booleans become yes/no, nil optionals render empty, string lists are
// space-joined.
func formatArgValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return ""
		}
		return formatArgValue(v.Elem())
	case reflect.Bool:
		if v.Bool() {
			return "yes"
		}
		return "no"
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(v.Float())
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatArgValue(v.Index(i))
		}
		return strings.Join(parts, " ")
	default:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", v.Interface())
	}
}

// structArgs renders every declared field of a section as name=value, in
// declaration order.
func structArgs(section interface{}) []string {
	v := reflect.ValueOf(section)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	fields := yamlFields(v.Type())
	args := make([]string, 0, len(fields))
	for _, f := range fields {
		args = append(args, f.name+"="+formatArgValue(v.FieldByIndex(f.index)))
	}
	return args
}

// cmdArgs joins structArgs with single spaces.
func cmdArgs(section interface{}) string {
	return strings.Join(structArgs(section), " ")
}
