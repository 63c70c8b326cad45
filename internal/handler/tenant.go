// internal/handler/tenant.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/middleware"
	"github.com/marchkeep/marchkeep/internal/service"
	"github.com/marchkeep/marchkeep/internal/tenant"
)

// TenantHandler serves tenant lookup, school creation and subdomain checks.
type TenantHandler struct {
	tenantService *service.TenantService
	parser        *tenant.Parser
}

func NewTenantHandler(tenantService *service.TenantService, parser *tenant.Parser) *TenantHandler {
	return &TenantHandler{tenantService: tenantService, parser: parser}
}

type TenantLookupResponse struct {
	BaseResponse
	Tenant *tenant.Info `json:"tenant"`
	URL    string       `json:"url,omitempty"`
}

// LookupHandler resolves a slug through the cache hierarchy. The edge layer
// and operators use it; a miss is a 404, not an error. An optional
// environment parameter selects which deployment's origin URL to report.
func (h *TenantHandler) LookupHandler(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "slug is required")
		return
	}

	env := tenant.Environment(r.URL.Query().Get("environment"))
	switch env {
	case "", tenant.EnvProduction, tenant.EnvStaging, tenant.EnvDevelopment:
	default:
		respondWithError(w, http.StatusBadRequest, "unknown environment")
		return
	}

	info, err := h.tenantService.Lookup(r.Context(), slug)
	if err != nil {
		slog.ErrorContext(r.Context(), "Tenant lookup failed", "slug", slug, "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if info == nil {
		respondWithError(w, http.StatusNotFound, "Tenant not found")
		return
	}

	resp := TenantLookupResponse{
		BaseResponse: BaseResponse{Ok: true},
		Tenant:       info,
	}
	if env != "" {
		resp.URL = h.parser.TenantURL(env, info.Slug)
	}
	respondWithJSON(w, http.StatusOK, resp)
}

type CreateSchoolResponse struct {
	BaseResponse
	*service.CreateSchoolOutput
}

// CreateSchoolHandler creates a pending tenant from an invite code. The
// caller becomes the school's director.
func (h *TenantHandler) CreateSchoolHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input service.CreateSchoolInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	env := h.parser.Parse(r.Host, r.URL.Path).Environment
	output, err := h.tenantService.CreateSchool(r.Context(), userID, env, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "School creation failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInviteCodeNotFound):
			respondWithError(w, http.StatusNotFound, "Invite code not found")
		case errors.Is(err, domain.ErrInviteCodeUsed):
			respondWithError(w, http.StatusBadRequest, "Invite code has already been used")
		case errors.Is(err, domain.ErrInviteCodeExpired):
			respondWithError(w, http.StatusBadRequest, "Invite code has expired")
		case errors.Is(err, domain.ErrSubdomainTaken):
			respondWithError(w, http.StatusConflict, "Subdomain is already taken")
		case errors.Is(err, domain.ErrInvalidSubdomain), errors.Is(err, domain.ErrSubdomainReserved):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, CreateSchoolResponse{
		BaseResponse:       BaseResponse{Ok: true},
		CreateSchoolOutput: output,
	})
}

type SubdomainCheckResponse struct {
	BaseResponse
	Subdomain string `json:"subdomain"`
	Available bool   `json:"available"`
}

func (h *TenantHandler) CheckSubdomainHandler(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("subdomain")
	if slug == "" {
		// Older clients sent the value as slug.
		slug = r.URL.Query().Get("slug")
	}
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "subdomain is required")
		return
	}

	available, err := h.tenantService.CheckSubdomain(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSubdomain), errors.Is(err, domain.ErrSubdomainReserved):
			respondWithJSON(w, http.StatusOK, SubdomainCheckResponse{
				BaseResponse: BaseResponse{Ok: true},
				Subdomain:    slug,
				Available:    false,
			})
		default:
			slog.ErrorContext(r.Context(), "Subdomain check failed", "slug", slug, "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, SubdomainCheckResponse{
		BaseResponse: BaseResponse{Ok: true},
		Subdomain:    slug,
		Available:    available,
	})
}
