package dataset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.json
var schemaFS embed.FS

// Kind identifies which collection a document holds.
type Kind string

const (
	KindCriteria Kind = "criteria"
	KindTeam     Kind = "team"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

var compiledSchemas = map[Kind]*jsonschema.Schema{
	KindCriteria: mustCompileSchema("criteria.schema.json"),
	KindTeam:     mustCompileSchema("team.schema.json"),
}

func mustCompileSchema(name string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile("schema/" + name)
	if err != nil {
		panic(fmt.Sprintf("read embedded %s: %v", name, err))
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("add %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile %s: %v", name, err))
	}
	return sch
}

// SchemaError lists every schema violation found in one document.
type SchemaError struct {
	File     string
	Messages []string
}

func (e *SchemaError) Error() string {
	switch len(e.Messages) {
	case 0:
		return fmt.Sprintf("%s: schema validation failed", e.File)
	case 1:
		return fmt.Sprintf("%s: schema validation failed: %s", e.File, e.Messages[0])
	default:
		return fmt.Sprintf("%s: schema validation failed: %s", e.File, strings.Join(e.Messages, "; "))
	}
}

func validateDocument(kind Kind, file string, doc any) error {
	sch, ok := compiledSchemas[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	err := sch.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &SchemaError{File: file, Messages: []string{err.Error()}}
	}
	var msgs []string
	collectSchemaErrors(ve, nil, func(loc []string, msg string) {
		msgs = append(msgs, pointer(loc)+subject(kind, doc, loc)+": "+msg)
	})
	return &SchemaError{File: file, Messages: msgs}
}

// collectSchemaErrors reports every leaf violation. Leaves raised while
// checking property names carry no location of their own, so they inherit
// the nearest located ancestor.
func collectSchemaErrors(ve *jsonschema.ValidationError, parent []string, report func(loc []string, msg string)) {
	loc := ve.InstanceLocation
	if len(loc) == 0 {
		loc = parent
	}
	if len(ve.Causes) == 0 {
		report(loc, ve.ErrorKind.LocalizedString(defaultPrinter))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, loc, report)
	}
}

func pointer(loc []string) string {
	return "/" + strings.Join(loc, "/")
}

// subject names the entry a location points into, e.g. ` (category "Testing")`.
func subject(kind Kind, doc any, loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	entries, ok := doc.([]any)
	if !ok {
		return ""
	}
	i, err := strconv.Atoi(loc[0])
	if err != nil || i < 0 || i >= len(entries) {
		return ""
	}
	entry, ok := entries[i].(map[string]any)
	if !ok {
		return ""
	}

	field := "category"
	if kind == KindTeam {
		field = "id"
	}
	name, ok := entry[field].(string)
	if !ok || name == "" {
		return ""
	}
	if kind == KindTeam {
		return fmt.Sprintf(" (employee %q)", name)
	}
	return fmt.Sprintf(" (category %q)", name)
}
