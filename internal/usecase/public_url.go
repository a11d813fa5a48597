package usecase

import (
	"context"
	"net/netip"
	"net/url"
	"strings"

	"doctrust/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// BaseURLStrategy yields one candidate public base URL for an account, or ""
// when it has nothing to offer.
type BaseURLStrategy func(ctx context.Context, ownerID string) (string, error)

// PublicURLBuilder turns tokens into public links. Strategies are evaluated
// in order; the first candidate accepted by SelectPublicBaseURL wins.
type PublicURLBuilder struct {
	strategies []BaseURLStrategy
}

func NewPublicURLBuilder(strategies ...BaseURLStrategy) *PublicURLBuilder {
	return &PublicURLBuilder{strategies: strategies}
}

// StaticBaseURL is a strategy returning a fixed value (environment config).
func StaticBaseURL(v string) BaseURLStrategy {
	return func(context.Context, string) (string, error) { return v, nil }
}

// AccountBaseURL reads the public base URL configured on the account.
func AccountBaseURL(repo interfaces.IAccountSettingsRepository) BaseURLStrategy {
	return func(ctx context.Context, ownerID string) (string, error) {
		if repo == nil || ownerID == "" {
			return "", nil
		}
		s, err := repo.GetByOwnerID(ctx, ownerID)
		if err != nil {
			return "", err
		}
		return s.PublicBaseURL, nil
	}
}

// Build returns base + "/" + path + "/" + token. It never emits a link whose
// host is loopback or private; without a usable base it returns
// ErrNoPublicBaseURL.
func (b *PublicURLBuilder) Build(ctx context.Context, ownerID, path, token string) (string, error) {
	candidates := make([]string, 0, len(b.strategies))
	for _, s := range b.strategies {
		v, err := s(ctx, ownerID)
		if err != nil {
			zap.S().Warnw("[url][usecase] base url strategy failed", "owner_id", ownerID, "error", err)
			continue
		}
		candidates = append(candidates, v)
	}

	base, ok := SelectPublicBaseURL(candidates)
	if !ok {
		zap.S().Errorw("[url][usecase] no public base url", "owner_id", ownerID, "candidates", len(candidates))
		return "", ErrNoPublicBaseURL
	}
	return base + "/" + strings.Trim(path, "/") + "/" + url.PathEscape(token), nil
}

// SelectPublicBaseURL returns the first candidate that is an absolute
// http(s) URL on a publicly routable host, normalized without trailing slash.
func SelectPublicBaseURL(candidates []string) (string, bool) {
	for _, c := range candidates {
		if base, ok := normalizePublicBaseURL(c); ok {
			return base, true
		}
	}
	return "", false
}

func normalizePublicBaseURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	if u.User != nil || u.RawQuery != "" || u.Fragment != "" {
		return "", false
	}
	if !IsPublicHost(u.Hostname()) {
		return "", false
	}
	return strings.TrimRight(u.Scheme+"://"+u.Host+u.EscapedPath(), "/"), true
}

// IsPublicHost rejects loopback, private, link-local and unspecified
// addresses as well as names that only resolve on a local network.
func IsPublicHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(host), "."))
	if host == "" {
		return false
	}
	if addr, err := netip.ParseAddr(strings.Trim(host, "[]")); err == nil {
		addr = addr.Unmap()
		return !(addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() ||
			addr.IsLinkLocalMulticast() || addr.IsUnspecified() || addr.IsMulticast() ||
			isSharedAddressSpace(addr))
	}
	if host == "localhost" || strings.HasSuffix(host, ".localhost") ||
		strings.HasSuffix(host, ".local") || strings.HasSuffix(host, ".internal") ||
		strings.HasSuffix(host, ".localdomain") {
		return false
	}
	// a single-label name (e.g. "api") only resolves inside a private network
	return strings.Contains(host, ".")
}

var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

func isSharedAddressSpace(addr netip.Addr) bool {
	return addr.Is4() && sharedAddressSpace.Contains(addr)
}
