// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strconv"
)

// Document is a decoded JSON-LD object.
type Document map[string]any

// ID returns the @id IRI of the document.
func (d Document) ID() string {
	iri, _ := d["@id"].(string)
	return iri
}

// String returns attribute name formatted for display, or "" when absent.
func (d Document) String(name string) string {
	switch v := d[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return fmt.Sprintf("%g", v)
	case map[string]any:
		return Document(v).ID()
	default:
		return fmt.Sprint(v)
	}
}

// Collection is one page of a hydra:Collection.
type Collection struct {
	Members    []Document `json:"hydra:member"`
	TotalItems int        `json:"hydra:totalItems"`
	View       struct {
		ID       string `json:"@id"`
		First    string `json:"hydra:first"`
		Last     string `json:"hydra:last"`
		Previous string `json:"hydra:previous"`
		Next     string `json:"hydra:next"`
	} `json:"hydra:view"`
}

// apiError is the hydra:Error or ConstraintViolationList body.
type apiError struct {
	Type        string `json:"@type"`
	Description string `json:"hydra:description"`
}
