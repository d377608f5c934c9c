// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/utils"
	"github.com/MKhiriev/go-staff-api/models"
	"github.com/go-resty/resty/v2"
)

const (
	contentTypeJSONLD     = "application/ld+json"
	contentTypeMergePatch = "application/merge-patch+json"
)

type httpStaffAPI struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPStaffAPI constructs the REST implementation of [StaffAPI].
// The base URL comes from cfg.HTTPAddress; a missing scheme defaults to
// http. Returns [ErrInvalidAddress] when the address cannot be used.
func NewHTTPStaffAPI(cfg config.Adapter, logger *logger.Logger) (StaffAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", contentTypeJSONLD)

	return &httpStaffAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpStaffAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpStaffAPI) Token() string {
	return h.token
}

// Login posts the credentials to /api/login and keeps the token taken from
// the Authorization response header.
func (h *httpStaffAPI) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", userID).Msg("logged in")

	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpStaffAPI) Version(ctx context.Context) (models.AppVersion, error) {
	var version models.AppVersion

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.AppVersion{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppVersion{}, err
	}

	return version, nil
}

func (h *httpStaffAPI) ListEmployees(ctx context.Context, query url.Values) (Collection, error) {
	return h.getCollection(ctx, "/api/employees", query)
}

func (h *httpStaffAPI) GetEmployee(ctx context.Context, id int64) (Document, error) {
	return h.getDocument(ctx, itemPath("/api/employees", id))
}

func (h *httpStaffAPI) GetEmployeeJob(ctx context.Context, employeeID int64) (Document, error) {
	return h.getDocument(ctx, itemPath("/api/employees", employeeID)+"/job")
}

func (h *httpStaffAPI) CreateEmployee(ctx context.Context, attributes Document) (Document, error) {
	return h.send(ctx, h.authedRequest(ctx).SetHeader("Content-Type", contentTypeJSONLD), resty.MethodPost, "/api/employees", attributes)
}

func (h *httpStaffAPI) UpdateEmployee(ctx context.Context, id int64, attributes Document) (Document, error) {
	return h.send(ctx, h.authedRequest(ctx).SetHeader("Content-Type", contentTypeJSONLD), resty.MethodPut, itemPath("/api/employees", id), attributes)
}

func (h *httpStaffAPI) ListEmployeeJobs(ctx context.Context, query url.Values) (Collection, error) {
	return h.getCollection(ctx, "/api/employee_jobs", query)
}

func (h *httpStaffAPI) CreateEmployeeJob(ctx context.Context, attributes Document) (Document, error) {
	return h.send(ctx, h.authedRequest(ctx).SetHeader("Content-Type", contentTypeJSONLD), resty.MethodPost, "/api/employee_jobs", attributes)
}

func (h *httpStaffAPI) ListUsers(ctx context.Context, query url.Values) (Collection, error) {
	return h.getCollection(ctx, "/api/users", query)
}

func (h *httpStaffAPI) CreateUser(ctx context.Context, attributes Document) (Document, error) {
	return h.send(ctx, h.client.R().SetHeader("Content-Type", contentTypeJSONLD), resty.MethodPost, "/api/users", attributes)
}

func (h *httpStaffAPI) PatchUser(ctx context.Context, id int64, attributes Document) (Document, error) {
	return h.send(ctx, h.authedRequest(ctx).SetHeader("Content-Type", contentTypeMergePatch), resty.MethodPatch, itemPath("/api/users", id), attributes)
}

func (h *httpStaffAPI) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(itemPath("/api/users", id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpStaffAPI) getCollection(ctx context.Context, path string, query url.Values) (Collection, error) {
	var collection Collection

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(path)
	if err != nil {
		return Collection{}, fmt.Errorf("get %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Collection{}, err
	}

	if err = json.Unmarshal(resp.Body(), &collection); err != nil {
		return Collection{}, fmt.Errorf("decode %s collection: %w", path, err)
	}

	return collection, nil
}

func (h *httpStaffAPI) getDocument(ctx context.Context, path string) (Document, error) {
	return h.send(ctx, h.client.R(), resty.MethodGet, path, nil)
}

// send executes req and decodes the JSON-LD document of the response.
func (h *httpStaffAPI) send(ctx context.Context, req *resty.Request, method, path string, body Document) (Document, error) {
	req.SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var doc Document
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("decode %s document: %w", path, err)
	}

	return doc, nil
}

func (h *httpStaffAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

func itemPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}
