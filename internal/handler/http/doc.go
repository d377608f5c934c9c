// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the staff API.
//
// It wires the chi routes of the employee, employee job and user resources,
// parses collection filters and pagination, renders JSON-LD documents through
// the serializer package and maps service errors onto hydra:Error responses.
// Cross-cutting concerns such as authentication, request tracing, access
// logging and response compression are handled here before requests are
// delegated to the service layer.
package http
