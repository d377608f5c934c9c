// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/employees", h.listEmployees)
		r.Get("/api/employees/{id}", h.getEmployee)
		r.Get("/api/employees/{id}/job", h.getEmployeeJob)

		r.Get("/api/employee_jobs", h.listEmployeeJobs)
		r.Get("/api/employee_jobs/{id}", h.getEmployeeJobItem)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/{id}", h.getUser)
		r.Post("/api/users", h.createUser)

		r.Post("/api/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// write routes, guarded when token signing is configured
	router.Group(func(r chi.Router) {
		if h.authRequired {
			r.Use(h.auth)
		}

		r.Post("/api/employees", h.createEmployee)
		r.Put("/api/employees/{id}", h.updateEmployee)

		r.Post("/api/employee_jobs", h.createEmployeeJob)

		r.Put("/api/users/{id}", h.updateUser)
		r.Patch("/api/users/{id}", h.updateUser)
		r.Delete("/api/users/{id}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrResourceNotFound)
	})

	return router
}
