// internal/tenant/hostname.go
package tenant

import (
	"net"
	"regexp"
	"strings"

	"github.com/marchkeep/marchkeep/internal/domain"
)

type Environment string

const (
	EnvProduction  Environment = "production"
	EnvStaging     Environment = "staging"
	EnvDevelopment Environment = "development"
)

// RequestInfo is the routing view of an inbound request, derived purely from
// hostname and path.
type RequestInfo struct {
	Environment     Environment
	IsMainSite      bool
	IsTenantRequest bool
	TenantSlug      string
	IsReserved      bool

	// ForwardPath is the path the request should continue with downstream.
	// In path-based development mode the /s/{slug} prefix carries tenancy,
	// not routing, so it is stripped here; everywhere else ForwardPath is
	// empty and the request path stands.
	ForwardPath string
}

// reservedSlugs can never be claimed as tenant subdomains.
var reservedSlugs = map[string]bool{
	"www":     true,
	"api":     true,
	"app":     true,
	"admin":   true,
	"staging": true,
	"mail":    true,
	"blog":    true,
	"docs":    true,
	"status":  true,
	"support": true,
	"assets":  true,
	"cdn":     true,
}

// IsReservedSlug reports whether slug can never identify a tenant.
func IsReservedSlug(slug string) bool {
	return reservedSlugs[strings.ToLower(slug)]
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{1,38}[a-z0-9])?$`)

// ValidateSlug checks subdomain format and the reserved list.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return domain.ErrInvalidSubdomain
	}
	if IsReservedSlug(slug) {
		return domain.ErrSubdomainReserved
	}
	return nil
}

// Parser maps hostnames and paths to routing info. Production and staging
// use subdomain-based tenancy; local development uses /s/{slug} path prefixes
// because subdomains of localhost are awkward to set up.
type Parser struct {
	rootDomain    string
	stagingDomain string
	devBaseURL    string
}

func NewParser(rootDomain, stagingDomain, devBaseURL string) *Parser {
	return &Parser{
		rootDomain:    strings.ToLower(rootDomain),
		stagingDomain: strings.ToLower(stagingDomain),
		devBaseURL:    devBaseURL,
	}
}

// Parse derives routing info from an inbound request's host and path.
func (p *Parser) Parse(host, path string) RequestInfo {
	hostname := strings.ToLower(host)
	if h, _, err := net.SplitHostPort(hostname); err == nil {
		hostname = h
	}

	switch {
	case hostname == "localhost" || hostname == "127.0.0.1":
		return p.parseDevPath(path)

	case hostname == p.stagingDomain:
		return RequestInfo{Environment: EnvStaging, IsMainSite: true}

	case strings.HasSuffix(hostname, "."+p.stagingDomain):
		slug := strings.TrimSuffix(hostname, "."+p.stagingDomain)
		return p.tenantInfo(EnvStaging, slug)

	case hostname == p.rootDomain || hostname == "www."+p.rootDomain:
		return RequestInfo{Environment: EnvProduction, IsMainSite: true}

	case strings.HasSuffix(hostname, "."+p.rootDomain):
		slug := strings.TrimSuffix(hostname, "."+p.rootDomain)
		return p.tenantInfo(EnvProduction, slug)

	default:
		// Unknown hosts (health probes, direct IP hits) route as the main
		// site rather than erroring.
		return RequestInfo{Environment: EnvProduction, IsMainSite: true}
	}
}

func (p *Parser) parseDevPath(path string) RequestInfo {
	const prefix = "/s/"
	if !strings.HasPrefix(path, prefix) {
		return RequestInfo{Environment: EnvDevelopment, IsMainSite: true}
	}

	rest := strings.TrimPrefix(path, prefix)
	slug := rest
	forward := "/"
	if i := strings.Index(rest, "/"); i >= 0 {
		slug = rest[:i]
		forward = rest[i:]
	}
	if slug == "" {
		return RequestInfo{Environment: EnvDevelopment, IsMainSite: true}
	}

	info := p.tenantInfo(EnvDevelopment, slug)
	info.ForwardPath = forward
	return info
}

func (p *Parser) tenantInfo(env Environment, slug string) RequestInfo {
	if IsReservedSlug(slug) {
		return RequestInfo{Environment: env, TenantSlug: slug, IsReserved: true}
	}
	return RequestInfo{Environment: env, IsTenantRequest: true, TenantSlug: slug}
}

// MainSiteURL returns the root-site origin for env, the redirect target when
// a tenant request cannot be served.
func (p *Parser) MainSiteURL(env Environment) string {
	switch env {
	case EnvStaging:
		return "https://" + p.stagingDomain
	case EnvDevelopment:
		return p.devBaseURL
	default:
		return "https://" + p.rootDomain
	}
}

// TenantURL returns the origin serving a tenant's pages in env.
func (p *Parser) TenantURL(env Environment, slug string) string {
	switch env {
	case EnvStaging:
		return "https://" + slug + "." + p.stagingDomain
	case EnvDevelopment:
		return p.devBaseURL + "/s/" + slug
	default:
		return "https://" + slug + "." + p.rootDomain
	}
}
