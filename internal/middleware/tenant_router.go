// internal/middleware/tenant_router.go
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/tenant"
)

// Headers injected for downstream handlers. Handlers read these instead of
// re-resolving tenancy on every call.
const (
	HeaderTenantID     = "x-tenant-id"
	HeaderTenantSlug   = "x-tenant-slug"
	HeaderTenantStatus = "x-tenant-status"
	HeaderEnvironment  = "x-environment"
	HeaderEnforce      = "x-tenant-enforce"
)

// Placeholder paths tenant requests are rewritten to when the tenant cannot
// serve traffic yet.
const (
	pathReserved    = "/reserved"
	pathOnboarding  = "/onboarding-incomplete"
	pathMaintenance = "/maintenance"
)

// webhookPathPrefix must always pass through unmodified. A pending tenant
// becomes active through a webhook; rewriting those requests would deadlock
// onboarding.
const webhookPathPrefix = "/api/webhooks/"

// publicMainSitePaths pass through on the main site without client-side
// tenancy enforcement.
var publicMainSitePaths = map[string]bool{
	"/":                    true,
	"/login":               true,
	"/signup":              true,
	"/pricing":             true,
	"/about":               true,
	"/health":              true,
	"/metrics":             true,
	"/api/schools/create":  true,
	"/api/subdomain/check": true,
	"/api/internal/tenant": true,
}

// TenantRouter decides, per request, whether to redirect, rewrite, or
// continue, based on the parsed hostname and the resolved tenant.
type TenantRouter struct {
	parser   *tenant.Parser
	resolver *tenant.Resolver
	logger   *slog.Logger
}

func NewTenantRouter(parser *tenant.Parser, resolver *tenant.Resolver, logger *slog.Logger) *TenantRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TenantRouter{
		parser:   parser,
		resolver: resolver,
		logger:   logger,
	}
}

func (t *TenantRouter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := t.parser.Parse(r.Host, r.URL.Path)

		// Path-mode tenancy: the /s/{slug} prefix identified the tenant and
		// is not part of the route, so the request continues without it.
		if info.ForwardPath != "" && info.ForwardPath != r.URL.Path {
			r = r.Clone(r.Context())
			r.URL.Path = info.ForwardPath
			r.URL.RawPath = ""
		}

		setHeader(w, r, HeaderEnvironment, string(info.Environment))

		// Reserved slugs never resolve to tenants; send the request home.
		if info.IsReserved {
			http.Redirect(w, r, t.parser.MainSiteURL(info.Environment), http.StatusFound)
			return
		}

		if info.IsMainSite {
			if !publicMainSitePaths[r.URL.Path] && !strings.HasPrefix(r.URL.Path, "/api/auth") {
				// Non-public main-site routes are enforced client-side: the
				// client performs a follow-up validation call and redirects
				// if the session's tenant doesn't match. A server-side
				// redirect here can loop with the auth flow.
				setHeader(w, r, HeaderEnforce, "client")
			}
			next.ServeHTTP(w, r)
			return
		}

		resolved, err := t.resolver.Resolve(r.Context(), info.TenantSlug)
		if err != nil {
			// Fail open: a tenancy-lookup outage must not take down the
			// whole site. Pass through with best-effort headers.
			t.logger.Error("tenant resolution failed, passing request through",
				"slug", info.TenantSlug,
				"error", err,
			)
			setHeader(w, r, HeaderTenantSlug, info.TenantSlug)
			next.ServeHTTP(w, r)
			return
		}

		if resolved == nil {
			http.Redirect(w, r, t.parser.MainSiteURL(info.Environment), http.StatusFound)
			return
		}

		setHeader(w, r, HeaderTenantID, resolved.ID.String())
		setHeader(w, r, HeaderTenantSlug, resolved.Slug)
		setHeader(w, r, HeaderTenantStatus, string(resolved.Status))

		switch resolved.Status {
		case model.TenantActive:
			next.ServeHTTP(w, r)

		case model.TenantPending:
			if strings.HasPrefix(r.URL.Path, webhookPathPrefix) {
				next.ServeHTTP(w, r)
				return
			}
			rewrite(w, r, next, pathOnboarding)

		case model.TenantReserved:
			rewrite(w, r, next, pathReserved)

		default:
			rewrite(w, r, next, pathMaintenance)
		}
	})
}

// setHeader injects a header into the inbound request (for downstream
// handlers) and the response (for client-side enforcement).
func setHeader(w http.ResponseWriter, r *http.Request, key, value string) {
	r.Header.Set(key, value)
	w.Header().Set(key, value)
}

func rewrite(w http.ResponseWriter, r *http.Request, next http.Handler, path string) {
	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""
	next.ServeHTTP(w, r2)
}

// TenantFromRequest reads the identity the router injected. Handlers on
// tenant routes treat absence as a not-found condition.
func TenantFromRequest(r *http.Request) (uuid.UUID, string, model.TenantStatus, error) {
	raw := r.Header.Get(HeaderTenantID)
	if raw == "" {
		return uuid.Nil, "", "", domain.ErrTenantNotFound
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", "", domain.ErrTenantNotFound
	}
	return id, r.Header.Get(HeaderTenantSlug), model.TenantStatus(r.Header.Get(HeaderTenantStatus)), nil
}
