// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-api/internal/serializer"
)

func (h *Handler) listEmployeeJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pagination, err := parsePagination(query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.EmployeeJobService.ListEmployeeJobs(r.Context(), pagination)
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc := serializer.Collection(serializer.EmployeeJobResource, collectionFilters(query), page,
		nil, serializer.NewNormalizer().EmployeeJob)
	writeDocument(w, r, doc, http.StatusOK)
}

func (h *Handler) getEmployeeJobItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.EmployeeJobService.GetEmployeeJob(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeDocument(w, r, serializer.NewNormalizer().EmployeeJob(job), http.StatusOK)
}

func (h *Handler) createEmployeeJob(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.EmployeeJobService.CreateEmployeeJob(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	iri := serializer.EmployeeJobResource.IRI(job.ID)
	logWrite(r, iri)
	w.Header().Set("Content-Location", iri)
	writeDocument(w, r, serializer.NewNormalizer().EmployeeJob(job), http.StatusCreated)
}
