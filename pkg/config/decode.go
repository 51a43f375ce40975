package config

import (
	"errors"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldInfo describes one declared field of a section type.
type fieldInfo struct {
	name  string
	index []int
}

// yamlFields returns the declared fields of a struct type in declaration
// order, flattening inline-embedded structs. Field names come from the yaml
// tag; fields tagged "-" are skipped.
func yamlFields(t reflect.Type) []fieldInfo {
	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("yaml")
		name, opts, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && (strings.Contains(opts, "inline") || tag == ",inline") {
			for _, sub := range yamlFields(f.Type) {
				sub.index = append([]int{i}, sub.index...)
				fields = append(fields, sub)
			}
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		fields = append(fields, fieldInfo{name: name, index: []int{i}})
	}
	return fields
}

// decodeStrict decodes a YAML mapping node into out, rejecting any key that
// does not correspond to a declared field. Every section decodes through
// this helper, which is what makes the schema closed: a typo is an error,
// never a silently ignored key.
func decodeStrict(node *yaml.Node, out interface{}, path string) error {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return schemaErr(path, "", node.Line, "expected a mapping")
	}

	allowed := make(map[string]struct{})
	for _, f := range yamlFields(reflect.TypeOf(out).Elem()) {
		allowed[f.name] = struct{}{}
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if _, ok := allowed[key.Value]; !ok {
			return schemaErr(path, key.Value, key.Line, "unknown field")
		}
	}

	if err := node.Decode(out); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return schemaErr(path, "", node.Line, "%v", err)
	}
	return nil
}
