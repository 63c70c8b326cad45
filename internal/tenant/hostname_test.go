package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marchkeep/marchkeep/internal/domain"
	"github.com/marchkeep/marchkeep/internal/tenant"
)

func TestParse(t *testing.T) {
	parser := tenant.NewParser("marchkeep.com", "staging.marchkeep.dev", "http://localhost:8080")

	tests := []struct {
		name string
		host string
		path string
		want tenant.RequestInfo
	}{
		{
			name: "apex is the main site",
			host: "marchkeep.com",
			path: "/",
			want: tenant.RequestInfo{Environment: tenant.EnvProduction, IsMainSite: true},
		},
		{
			name: "www is the main site",
			host: "www.marchkeep.com",
			path: "/",
			want: tenant.RequestInfo{Environment: tenant.EnvProduction, IsMainSite: true},
		},
		{
			name: "production subdomain is a tenant",
			host: "lincoln-high.marchkeep.com",
			path: "/dashboard",
			want: tenant.RequestInfo{Environment: tenant.EnvProduction, IsTenantRequest: true, TenantSlug: "lincoln-high"},
		},
		{
			name: "host case and port are normalized",
			host: "Lincoln-High.Marchkeep.COM:443",
			path: "/",
			want: tenant.RequestInfo{Environment: tenant.EnvProduction, IsTenantRequest: true, TenantSlug: "lincoln-high"},
		},
		{
			name: "reserved subdomain is flagged",
			host: "admin.marchkeep.com",
			path: "/",
			want: tenant.RequestInfo{Environment: tenant.EnvProduction, TenantSlug: "admin", IsReserved: true},
		},
		{
			name: "staging apex is the main site",
			host: "staging.marchkeep.dev",
			path: "/",
			want: tenant.RequestInfo{Environment: tenant.EnvStaging, IsMainSite: true},
		},
		{
			name: "staging subdomain is a tenant",
			host: "lincoln-high.staging.marchkeep.dev",
			path: "/",
			want: tenant.RequestInfo{Environment: tenant.EnvStaging, IsTenantRequest: true, TenantSlug: "lincoln-high"},
		},
		{
			name: "localhost root is the main site",
			host: "localhost:8080",
			path: "/",
			want: tenant.RequestInfo{Environment: tenant.EnvDevelopment, IsMainSite: true},
		},
		{
			name: "dev path prefix selects a tenant and strips itself",
			host: "localhost:8080",
			path: "/s/lincoln-high/dashboard",
			want: tenant.RequestInfo{Environment: tenant.EnvDevelopment, IsTenantRequest: true, TenantSlug: "lincoln-high", ForwardPath: "/dashboard"},
		},
		{
			name: "dev path prefix with nested route forwards the tail",
			host: "localhost:8080",
			path: "/s/lincoln-high/api/students",
			want: tenant.RequestInfo{Environment: tenant.EnvDevelopment, IsTenantRequest: true, TenantSlug: "lincoln-high", ForwardPath: "/api/students"},
		},
		{
			name: "dev path prefix with no tail forwards the root",
			host: "localhost:8080",
			path: "/s/lincoln-high",
			want: tenant.RequestInfo{Environment: tenant.EnvDevelopment, IsTenantRequest: true, TenantSlug: "lincoln-high", ForwardPath: "/"},
		},
		{
			name: "bare dev prefix is the main site",
			host: "127.0.0.1",
			path: "/s/",
			want: tenant.RequestInfo{Environment: tenant.EnvDevelopment, IsMainSite: true},
		},
		{
			name: "unknown host routes as the main site",
			host: "10.1.2.3",
			path: "/healthz",
			want: tenant.RequestInfo{Environment: tenant.EnvProduction, IsMainSite: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Parse(tt.host, tt.path))
		})
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"lincoln-high", "band123", "x9y"}
	for _, slug := range valid {
		assert.NoError(t, tenant.ValidateSlug(slug), slug)
	}

	invalid := []string{"", "-leading", "trailing-", "UPPER", "has_underscore", "has.dot",
		"an-extremely-long-slug-that-goes-well-past-forty-characters-total"}
	for _, slug := range invalid {
		assert.ErrorIs(t, tenant.ValidateSlug(slug), domain.ErrInvalidSubdomain, slug)
	}

	for _, slug := range []string{"www", "api", "admin", "staging"} {
		assert.ErrorIs(t, tenant.ValidateSlug(slug), domain.ErrSubdomainReserved, slug)
	}
}

func TestTenantURL(t *testing.T) {
	parser := tenant.NewParser("marchkeep.com", "staging.marchkeep.dev", "http://localhost:8080")

	assert.Equal(t, "https://lincoln-high.marchkeep.com", parser.TenantURL(tenant.EnvProduction, "lincoln-high"))
	assert.Equal(t, "https://lincoln-high.staging.marchkeep.dev", parser.TenantURL(tenant.EnvStaging, "lincoln-high"))
	assert.Equal(t, "http://localhost:8080/s/lincoln-high", parser.TenantURL(tenant.EnvDevelopment, "lincoln-high"))

	assert.Equal(t, "https://marchkeep.com", parser.MainSiteURL(tenant.EnvProduction))
	assert.Equal(t, "https://staging.marchkeep.dev", parser.MainSiteURL(tenant.EnvStaging))
	assert.Equal(t, "http://localhost:8080", parser.MainSiteURL(tenant.EnvDevelopment))
}
