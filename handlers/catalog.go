// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/certificate-wizard/middleware"
	"github.com/danielhkuo/certificate-wizard/models"
)

// CatalogHandler serves the fixed option lists
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListCertificateTypes handles GET /certificate-types
func (h *CatalogHandler) ListCertificateTypes(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CertificateTypesResponse{
		CertificateTypes: models.CertificateOptions(),
	})
}

// ListBloodGroups handles GET /blood-groups
func (h *CatalogHandler) ListBloodGroups(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.BloodGroupsResponse{
		BloodGroups: models.BloodGroups(),
	})
}
