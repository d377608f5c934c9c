// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/models"
	"github.com/go-chi/chi/v5"
)

const pageParam = "page"

// parsePagination reads the 1-based page number. Items per page are decided
// by the service.
func parsePagination(query url.Values) (models.Pagination, error) {
	raw := query.Get(pageParam)
	if raw == "" {
		return models.Pagination{Page: 1}, nil
	}

	page, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) || page > models.MaxPage {
		return models.Pagination{}, ErrPageOutOfRange
	}
	if err != nil || page < 1 {
		return models.Pagination{}, ErrInvalidPage
	}

	return models.Pagination{Page: page}, nil
}

// collectionFilters returns the query without the page parameter, for the
// hydra:view links.
func collectionFilters(query url.Values) url.Values {
	filters := make(url.Values, len(query))
	for k, v := range query {
		if k == pageParam {
			continue
		}
		filters[k] = v
	}
	return filters
}

// listValues returns the values of name and name[].
func listValues(query url.Values, name string) []string {
	values := append([]string(nil), query[name]...)
	return append(values, query[name+"[]"]...)
}

// parseEmployeeFilter reads the job and order filters of the employee
// collection. Values that cannot be applied are skipped.
func parseEmployeeFilter(r *http.Request) (models.EmployeeFilter, error) {
	log := logger.FromRequest(r).With().Str("func", "parseEmployeeFilter").Logger()
	query := r.URL.Query()

	pagination, err := parsePagination(query)
	if err != nil {
		return models.EmployeeFilter{}, err
	}

	filter := models.EmployeeFilter{Pagination: pagination}

	// one invalid value disables the whole job filter
	for _, value := range listValues(query, "job") {
		id, err := parseReference(serializer.EmployeeJobResource, value)
		if err != nil {
			log.Debug().Str("job", value).Msg("invalid job filter ignored")
			filter.JobIDs = nil
			break
		}
		filter.JobIDs = append(filter.JobIDs, id)
	}

	filter.Order = parseOrder(r.URL.RawQuery, "id", "name")

	return filter, nil
}

// parseOrder reads order[field]=asc|desc terms in the order they appear in
// the raw query. Unknown fields and directions are skipped.
func parseOrder(rawQuery string, fields ...string) []models.OrderBy {
	var order []models.OrderBy

	for _, pair := range strings.Split(rawQuery, "&") {
		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		field, ok := strings.CutPrefix(key, "order[")
		if !ok {
			continue
		}
		field, ok = strings.CutSuffix(field, "]")
		if !ok || !slices.Contains(fields, field) {
			continue
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		var direction models.OrderDirection
		switch strings.ToLower(value) {
		case "asc":
			direction = models.OrderAsc
		case "desc":
			direction = models.OrderDesc
		default:
			continue
		}

		order = append(order, models.OrderBy{Field: field, Direction: direction})
	}

	return order
}

// parseReference accepts a plain id or an item IRI of resource.
func parseReference(resource serializer.Resource, value string) (int64, error) {
	if id, err := strconv.ParseInt(value, 10, 64); err == nil && id > 0 {
		return id, nil
	}
	return resource.ParseIRI(value)
}

func parseUserFilter(r *http.Request) (models.UserFilter, error) {
	query := r.URL.Query()

	pagination, err := parsePagination(query)
	if err != nil {
		return models.UserFilter{}, err
	}

	return models.UserFilter{
		Usernames:          listValues(query, "username"),
		UsernameCanonicals: listValues(query, "username_canonical"),
		Emails:             listValues(query, "email"),
		Pagination:         pagination,
	}, nil
}

// itemID reads the {id} route parameter. Anything but a positive integer
// yields [ErrResourceNotFound].
func itemID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrResourceNotFound
	}
	return id, nil
}
