// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/models"
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEmployeeFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.EmployeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc := serializer.Collection(serializer.EmployeeResource, collectionFilters(r.URL.Query()), page,
		serializer.EmployeeSearch, serializer.NewNormalizer().Employee)
	writeDocument(w, r, doc, http.StatusOK)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.services.EmployeeService.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	normalizer := serializer.NewNormalizer(serializer.GroupEmployeeRead, serializer.GroupEmployeeItemGet)
	writeDocument(w, r, normalizer.Employee(employee), http.StatusOK)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.services.EmployeeService.CreateEmployee(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	iri := serializer.EmployeeResource.IRI(employee.ID)
	logWrite(r, iri)
	w.Header().Set("Content-Location", iri)
	writeEmployee(w, r, employee, http.StatusCreated)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	payload, err := readPayload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.services.EmployeeService.UpdateEmployee(r.Context(), id, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logWrite(r, serializer.EmployeeResource.IRI(employee.ID))
	writeEmployee(w, r, employee, http.StatusOK)
}

// getEmployeeJob serves the job subresource of an employee.
func (h *Handler) getEmployeeJob(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	job, err := h.services.EmployeeService.GetEmployeeJob(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeDocument(w, r, serializer.NewNormalizer().EmployeeJob(job), http.StatusOK)
}

func writeEmployee(w http.ResponseWriter, r *http.Request, employee *models.Employee, status int) {
	writeDocument(w, r, serializer.NewNormalizer().Employee(employee), status)
}
