// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-staff-api/models"
)

// Payload is a decoded JSON object body, attribute by attribute.
type Payload map[string]json.RawMessage

// ParsePayload decodes body as a JSON object.
func ParsePayload(body []byte) (Payload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, syntaxError()
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, syntaxError()
	}

	return payload, nil
}

// Has reports whether attr is present in the payload, null included.
func (p Payload) Has(attr string) bool {
	_, ok := p[attr]
	return ok
}

// givenType names the JSON type of raw the way error messages report it.
func givenType(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "NULL"
	}

	switch raw[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "NULL"
	case '[', '{':
		return "array"
	default:
		if bytes.ContainsAny(raw, ".eE") {
			return "double"
		}
		return "integer"
	}
}

func isNull(raw json.RawMessage) bool {
	return givenType(raw) == "NULL"
}

func decodeString(attr string, raw json.RawMessage) (string, error) {
	if givenType(raw) != "string" {
		return "", typeError(attr, "string", givenType(raw))
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", syntaxError()
	}
	return s, nil
}

func decodeNullableString(attr string, raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}

	s, err := decodeString(attr, raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// decodeDecimal accepts a decimal as a JSON string or number and keeps its
// literal text.
func decodeDecimal(attr string, raw json.RawMessage) (string, error) {
	switch givenType(raw) {
	case "integer", "double":
		return string(bytes.TrimSpace(raw)), nil
	default:
		return decodeString(attr, raw)
	}
}

func decodeInt(attr string, raw json.RawMessage) (int, error) {
	if givenType(raw) != "integer" {
		return 0, typeError(attr, "int", givenType(raw))
	}

	n, err := strconv.Atoi(string(bytes.TrimSpace(raw)))
	if err != nil {
		return 0, typeError(attr, "int", "double")
	}
	return n, nil
}

func decodeBool(attr string, raw json.RawMessage) (bool, error) {
	if givenType(raw) != "boolean" {
		return false, typeError(attr, "bool", givenType(raw))
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, syntaxError()
	}
	return b, nil
}

func decodeDateTime(attr string, raw json.RawMessage) (models.DateTime, error) {
	s, err := decodeString(attr, raw)
	if err != nil {
		return models.DateTime{}, err
	}

	if strings.TrimSpace(s) == "" {
		return models.DateTime{}, denormalizationErrorf("The data is either an empty string or null, you should pass a string that can be parsed with the passed format or a valid DateTime string.")
	}

	d, err := models.ParseDateTime(s)
	if err != nil {
		return models.DateTime{}, denormalizationErrorf("Parsing datetime string %q failed.", s)
	}
	return d, nil
}

func decodeNullableDateTime(attr string, raw json.RawMessage) (*models.DateTime, error) {
	if isNull(raw) {
		return nil, nil
	}

	d, err := decodeDateTime(attr, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeNullableStringList(attr string, raw json.RawMessage) ([]string, error) {
	if isNull(raw) {
		return nil, nil
	}

	if t := givenType(raw); t != "array" || bytes.TrimSpace(raw)[0] != '[' {
		return nil, typeError(attr, "array", t)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, typeError(attr, "array", "array")
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// reference is a relation given by IRI or plain id.
type reference struct {
	id  int64
	iri string
}

func decodeReference(attr string, resource Resource, raw json.RawMessage) (*reference, error) {
	raw = bytes.TrimSpace(raw)

	switch givenType(raw) {
	case "NULL":
		return nil, nil
	case "integer":
		id, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil || id < 1 {
			return nil, denormalizationErrorf("Invalid IRI %q.", string(raw))
		}
		return &reference{id: id, iri: resource.IRI(id)}, nil
	case "string":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, syntaxError()
		}
		if id, err := strconv.ParseInt(s, 10, 64); err == nil && id > 0 {
			return &reference{id: id, iri: resource.IRI(id)}, nil
		}
		id, err := resource.ParseIRI(s)
		if err != nil {
			return nil, denormalizationErrorf("Invalid IRI %q.", s)
		}
		return &reference{id: id, iri: s}, nil
	default:
		if raw[0] == '{' {
			return nil, nestedDocumentError(attr)
		}
		return nil, denormalizationErrorf("Expected IRI or document for resource %q, %q given.", resource.Type, givenType(raw))
	}
}
