// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the "application/json" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSONContent(w, data, "application/json", statusCode)
}

// WriteJSONContent is [WriteJSON] with an explicit Content-Type, used for
// JSON-based media types such as "application/ld+json".
//
// A 204 No Content status writes the headers only.
func WriteJSONContent(w http.ResponseWriter, data any, contentType string, statusCode int) (int, error) {
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return 0, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
