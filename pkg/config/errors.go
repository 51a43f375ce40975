package config

import "fmt"

// ErrorKind classifies a configuration error.
type ErrorKind string

const (
	// KindSchema indicates an unknown field, a wrong type, or a failed
	// coercion during construction.
	KindSchema ErrorKind = "schema"

	// KindInvariant indicates a cross-field constraint failure, e.g. an
	// energy range with min >= max.
	KindInvariant ErrorKind = "invariant"
)

// ValidationError reports a schema or invariant violation with its location
// in the document. Construction is fail-fast: the first violation aborts the
// whole tree, so a partially valid configuration is never observable.
type ValidationError struct {
	// Kind is the error classification.
	Kind ErrorKind

	// Path is the dotted document path to the offending section.
	Path string

	// Field is the offending field name, if known.
	Field string

	// Line is the 1-indexed document line, when decoding from YAML.
	Line int

	// Message is the human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	loc := e.Path
	if e.Field != "" {
		if loc != "" {
			loc += "."
		}
		loc += e.Field
	}
	msg := fmt.Sprintf("[%s] %s: %s", e.Kind, loc, e.Message)
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	return msg
}

func schemaErr(path, field string, line int, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:    KindSchema,
		Path:    path,
		Field:   field,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func invariantErr(path, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:    KindInvariant,
		Path:    path,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// MissingReferenceError reports a render operation that needs an optional
// field which was never set. It is surfaced at render time, not at
// construction time: the field is legitimately optional until the render
// path that needs it runs.
type MissingReferenceError struct {
	// Section is the section the render was invoked on.
	Section string

	// Field is the unset field or lookup key.
	Field string
}

// Error implements the error interface.
func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s: %s is not set", e.Section, e.Field)
}

// FileExistsError reports a write to an existing destination without
// overwrite permission. The existing file is left untouched.
type FileExistsError struct {
	Path string
}

// Error implements the error interface.
func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file exists already: %s", e.Path)
}
