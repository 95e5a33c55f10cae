// Package validate checks create and update payloads against embedded JSON
// Schema documents and reports violations as field-level errors. The same
// schemas back the HTTP handlers and the typed client.
package validate

import (
	_ "embed"
	"encoding/json"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mesh-intelligence/todolist/pkg/types"
)

//go:embed schemas/create.json
var createSchemaJSON string

//go:embed schemas/update.json
var updateSchemaJSON string

// Schemas are compiled once at package init; the documents are embedded so
// a deployed binary carries no loose schema files.
var (
	createSchema = jsonschema.MustCompileString("create.json", createSchemaJSON)
	updateSchema = jsonschema.MustCompileString("update.json", updateSchemaJSON)
)

// FieldErrors maps a field name to the validation messages for that field.
// Violations that do not target a specific property (an empty patch, a
// malformed body) are keyed under the empty string.
type FieldErrors struct {
	Fields map[string][]string `json:"fieldErrors"`
}

// add records a message under the given field.
func (fe *FieldErrors) add(field, msg string) {
	if fe.Fields == nil {
		fe.Fields = make(map[string][]string)
	}
	fe.Fields[field] = append(fe.Fields[field], msg)
}

// Create validates a create payload and returns the todo text.
// A non-nil *FieldErrors means the payload was rejected.
func Create(raw []byte) (string, *FieldErrors) {
	doc, fe := decode(raw)
	if fe != nil {
		return "", fe
	}
	if fe := check(createSchema, doc); fe != nil {
		return "", fe
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		fe := &FieldErrors{}
		fe.add("", "invalid JSON body")
		return "", fe
	}
	return body.Text, nil
}

// Update validates an update payload and returns the decoded patch.
// A non-nil *FieldErrors means the payload was rejected; an empty payload
// is a rejection (minProperties), not a no-op.
func Update(raw []byte) (types.UpdatePatch, *FieldErrors) {
	doc, fe := decode(raw)
	if fe != nil {
		return types.UpdatePatch{}, fe
	}
	if fe := check(updateSchema, doc); fe != nil {
		return types.UpdatePatch{}, fe
	}

	var patch types.UpdatePatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		fe := &FieldErrors{}
		fe.add("", "invalid JSON body")
		return types.UpdatePatch{}, fe
	}
	return patch, nil
}

// decode unmarshals the raw body into a generic document for schema
// validation.
func decode(raw []byte) (any, *FieldErrors) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fe := &FieldErrors{}
		fe.add("", "invalid JSON body")
		return nil, fe
	}
	return doc, nil
}

// check validates doc against the schema and flattens the resulting error
// tree into field-keyed messages.
func check(schema *jsonschema.Schema, doc any) *FieldErrors {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	fe := &FieldErrors{}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		fe.add("", err.Error())
		return fe
	}
	collectCauses(ve, fe)
	return fe
}

// collectCauses walks to the leaf causes of a validation error and records
// each under the property the violation targets.
func collectCauses(ve *jsonschema.ValidationError, fe *FieldErrors) {
	if len(ve.Causes) == 0 {
		fe.add(fieldFor(ve), ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectCauses(cause, fe)
	}
}

// fieldFor derives the field name a violation belongs to. Missing-property
// violations report at the object root, so the property name is recovered
// from the message to match the per-field shape callers expect.
func fieldFor(ve *jsonschema.ValidationError) string {
	if loc := ve.InstanceLocation; loc != "" {
		return loc[strings.LastIndex(loc, "/")+1:]
	}
	if strings.HasSuffix(ve.KeywordLocation, "/required") {
		if name := quotedName(ve.Message); name != "" {
			return name
		}
	}
	return ""
}

// quotedName extracts the first single-quoted token from a message like
// "missing properties: 'text'".
func quotedName(msg string) string {
	start := strings.Index(msg, "'")
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], "'")
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
