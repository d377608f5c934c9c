// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-staff-api/models"
)

// SearchMapping is one query variable a collection understands.
type SearchMapping struct {
	Variable string
	Property string
}

var (
	EmployeeSearch = []SearchMapping{
		{Variable: "job", Property: "job"},
		{Variable: "job[]", Property: "job"},
		{Variable: "order[id]", Property: "id"},
		{Variable: "order[name]", Property: "name"},
	}
	UserSearch = []SearchMapping{
		{Variable: "username", Property: "username"},
		{Variable: "username[]", Property: "username"},
		{Variable: "username_canonical", Property: "username_canonical"},
		{Variable: "username_canonical[]", Property: "username_canonical"},
		{Variable: "email", Property: "email"},
		{Variable: "email[]", Property: "email"},
	}
)

// Collection renders one page of resource as a hydra:Collection.
//
// filters are the active query parameters other than page; they are carried
// into every hydra:view link. search may be nil.
func Collection[T any](resource Resource, filters url.Values, page models.Page[T], search []SearchMapping, normalize func(T) Document) Document {
	members := make([]Document, 0, len(page.Items))
	for _, item := range page.Items {
		members = append(members, normalize(item))
	}

	doc := Document{
		"@id":              resource.Path,
		"@type":            "hydra:Collection",
		"hydra:member":     members,
		"hydra:totalItems": page.TotalItems,
		"hydra:view":       collectionView(resource.Path, filters, page.Page, page.LastPage()),
	}

	if len(search) > 0 {
		doc["hydra:search"] = searchTemplate(resource.Path, search)
	}

	return doc
}

func collectionView(path string, filters url.Values, current, last int) Document {
	view := Document{
		"@id":         pageIRI(path, filters, current),
		"@type":       "hydra:PartialCollectionView",
		"hydra:first": pageIRI(path, filters, 1),
		"hydra:last":  pageIRI(path, filters, last),
	}

	if current > 1 {
		view["hydra:previous"] = pageIRI(path, filters, current-1)
	}
	if current < last {
		view["hydra:next"] = pageIRI(path, filters, current+1)
	}

	return view
}

func pageIRI(path string, filters url.Values, page int) string {
	query := make(url.Values, len(filters)+1)
	for k, v := range filters {
		query[k] = append([]string(nil), v...)
	}
	query.Set("page", strconv.Itoa(page))

	return path + "?" + query.Encode()
}

func searchTemplate(path string, search []SearchMapping) Document {
	variables := make([]string, 0, len(search))
	mapping := make([]Document, 0, len(search))
	for _, m := range search {
		variables = append(variables, m.Variable)
		mapping = append(mapping, Document{
			"@type":    "IriTemplateMapping",
			"variable": m.Variable,
			"property": m.Property,
			"required": false,
		})
	}

	return Document{
		"@type":                        "hydra:IriTemplate",
		"hydra:template":               path + "{?" + strings.Join(variables, ",") + "}",
		"hydra:variableRepresentation": "BasicRepresentation",
		"hydra:mapping":                mapping,
	}
}
