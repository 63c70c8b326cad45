package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marchkeep/marchkeep/internal/cache"
	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/middleware"
	"github.com/marchkeep/marchkeep/internal/mocks"
	"github.com/marchkeep/marchkeep/internal/model"
	"github.com/marchkeep/marchkeep/internal/tenant"
)

func newRouter(t *testing.T, repo tenant.Repository) *middleware.TenantRouter {
	t.Helper()
	parser := tenant.NewParser("marchkeep.com", "staging.marchkeep.dev", "http://localhost:8080")
	resolver := tenant.NewResolver(cache.NewInMemoryCache(time.Minute, time.Minute), nil, repo, nil)
	return middleware.NewTenantRouter(parser, resolver, nil)
}

type capture struct {
	path     string
	tenantID string
	status   string
	called   bool
}

func captureHandler(c *capture) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.path = r.URL.Path
		c.tenantID = r.Header.Get("x-tenant-id")
		c.status = r.Header.Get("x-tenant-status")
		w.WriteHeader(http.StatusOK)
	})
}

func TestTenantRouterActiveTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	row := &model.Tenant{ID: uuid.New(), Slug: "lincoln-high", Name: "Lincoln High School", Status: model.TenantActive}
	repo := mocks.NewMockTenantRepositoryIface(ctrl)
	repo.EXPECT().FindBySlug(gomock.Any(), "lincoln-high").Return(row, nil)

	var c capture
	handler := newRouter(t, repo).Handler(captureHandler(&c))

	req := httptest.NewRequest(http.MethodGet, "http://lincoln-high.marchkeep.com/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, c.called)
	assert.Equal(t, "/dashboard", c.path)
	assert.Equal(t, row.ID.String(), c.tenantID)
	assert.Equal(t, "active", c.status)
	assert.Equal(t, "lincoln-high", rec.Header().Get("x-tenant-slug"))
}

func TestTenantRouterUnknownSlugRedirectsHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepositoryIface(ctrl)
	repo.EXPECT().FindBySlug(gomock.Any(), "no-such-school").Return(nil, domain.ErrTenantNotFound)

	var c capture
	handler := newRouter(t, repo).Handler(captureHandler(&c))

	req := httptest.NewRequest(http.MethodGet, "http://no-such-school.marchkeep.com/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, c.called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://marchkeep.com", rec.Header().Get("Location"))
}

func TestTenantRouterPendingTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	row := &model.Tenant{ID: uuid.New(), Slug: "new-school", Status: model.TenantPending}

	t.Run("regular paths rewrite to the onboarding placeholder", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		repo.EXPECT().FindBySlug(gomock.Any(), "new-school").Return(row, nil)

		var c capture
		handler := newRouter(t, repo).Handler(captureHandler(&c))

		req := httptest.NewRequest(http.MethodGet, "http://new-school.marchkeep.com/dashboard", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, c.called)
		assert.Equal(t, "/onboarding-incomplete", c.path)
	})

	t.Run("webhook paths pass through untouched", func(t *testing.T) {
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		repo.EXPECT().FindBySlug(gomock.Any(), "new-school").Return(row, nil)

		var c capture
		handler := newRouter(t, repo).Handler(captureHandler(&c))

		req := httptest.NewRequest(http.MethodPost, "http://new-school.marchkeep.com/api/webhooks/stripe", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, c.called)
		assert.Equal(t, "/api/webhooks/stripe", c.path, "activation webhooks must reach the handler")
	})
}

func TestTenantRouterInactiveTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	row := &model.Tenant{ID: uuid.New(), Slug: "old-school", Status: model.TenantInactive}
	repo := mocks.NewMockTenantRepositoryIface(ctrl)
	repo.EXPECT().FindBySlug(gomock.Any(), "old-school").Return(row, nil)

	var c capture
	handler := newRouter(t, repo).Handler(captureHandler(&c))

	req := httptest.NewRequest(http.MethodGet, "http://old-school.marchkeep.com/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, c.called)
	assert.Equal(t, "/maintenance", c.path)
}

func TestTenantRouterReservedSubdomainRedirects(t *testing.T) {
	var c capture
	handler := newRouter(t, nil).Handler(captureHandler(&c))

	req := httptest.NewRequest(http.MethodGet, "http://admin.marchkeep.com/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, c.called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://marchkeep.com", rec.Header().Get("Location"))
}

func TestTenantRouterMainSite(t *testing.T) {
	t.Run("public path carries no enforcement header", func(t *testing.T) {
		var c capture
		handler := newRouter(t, nil).Handler(captureHandler(&c))

		req := httptest.NewRequest(http.MethodGet, "http://marchkeep.com/pricing", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, c.called)
		assert.Empty(t, rec.Header().Get("x-tenant-enforce"))
	})

	t.Run("non-public path is marked for client enforcement", func(t *testing.T) {
		var c capture
		handler := newRouter(t, nil).Handler(captureHandler(&c))

		req := httptest.NewRequest(http.MethodGet, "http://marchkeep.com/api/payments/history", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, c.called, "enforcement is advisory, the request still flows")
		assert.Equal(t, "client", rec.Header().Get("x-tenant-enforce"))
	})
}

func TestTenantRouterDevPathMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("tenant prefix is stripped so subdomain routes match", func(t *testing.T) {
		row := &model.Tenant{ID: uuid.New(), Slug: "lincoln-high", Status: model.TenantActive}
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		repo.EXPECT().FindBySlug(gomock.Any(), "lincoln-high").Return(row, nil)

		var c capture
		handler := newRouter(t, repo).Handler(captureHandler(&c))

		req := httptest.NewRequest(http.MethodGet, "http://localhost:8080/s/lincoln-high/api/students", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.True(t, c.called)
		assert.Equal(t, "/api/students", c.path, "the same route must match in both deployment modes")
		assert.Equal(t, row.ID.String(), c.tenantID)
		assert.Equal(t, "development", rec.Header().Get("x-environment"))
	})

	t.Run("pending tenant webhooks pass through stripped", func(t *testing.T) {
		row := &model.Tenant{ID: uuid.New(), Slug: "new-school", Status: model.TenantPending}
		repo := mocks.NewMockTenantRepositoryIface(ctrl)
		repo.EXPECT().FindBySlug(gomock.Any(), "new-school").Return(row, nil)

		var c capture
		handler := newRouter(t, repo).Handler(captureHandler(&c))

		req := httptest.NewRequest(http.MethodPost, "http://localhost:8080/s/new-school/api/webhooks/stripe", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, c.called)
		assert.Equal(t, "/api/webhooks/stripe", c.path)
	})
}

func TestTenantRouterFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepositoryIface(ctrl)
	repo.EXPECT().FindBySlug(gomock.Any(), "lincoln-high").Return(nil, assert.AnError)

	var c capture
	handler := newRouter(t, repo).Handler(captureHandler(&c))

	req := httptest.NewRequest(http.MethodGet, "http://lincoln-high.marchkeep.com/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, c.called, "a resolution outage must not take the site down")
	assert.Equal(t, "/dashboard", c.path)
	assert.Empty(t, c.tenantID)
	assert.Equal(t, "lincoln-high", rec.Header().Get("x-tenant-slug"))
}

func TestTenantFromRequest(t *testing.T) {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-tenant-id", id.String())
	req.Header.Set("x-tenant-slug", "lincoln-high")
	req.Header.Set("x-tenant-status", "active")

	gotID, slug, status, err := middleware.TenantFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "lincoln-high", slug)
	assert.Equal(t, model.TenantActive, status)

	_, _, _, err = middleware.TenantFromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
}
