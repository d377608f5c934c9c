// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	filter, err := parseUserFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.UserService.ListUsers(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc := serializer.Collection(serializer.UserResource, collectionFilters(r.URL.Query()), page,
		serializer.UserSearch, serializer.NewNormalizer(serializer.GroupUserRead).User)
	writeDocument(w, r, doc, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeUser(w, r, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	iri := serializer.UserResource.IRI(user.ID)
	logWrite(r, iri)
	w.Header().Set("Content-Location", iri)
	writeUser(w, r, user, http.StatusCreated)
}

// updateUser serves both PUT and PATCH; either merges the given attributes
// into the stored user.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPatch {
		if err := requireMergePatch(r); err != nil {
			writeError(w, r, err)
			return
		}
	}

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

	user, err := h.services.UserService.UpdateUser(r.Context(), id, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logWrite(r, serializer.UserResource.IRI(user.ID))
	writeUser(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logWrite(r, serializer.UserResource.IRI(id))
	w.WriteHeader(http.StatusNoContent)
}

func writeUser(w http.ResponseWriter, r *http.Request, user *models.User, status int) {
	writeDocument(w, r, serializer.NewNormalizer(serializer.GroupUserRead).User(user), status)
}
