package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	TenantIDKey ContextKey = "tenant_id"
	UserIDKey   ContextKey = "user_id"
)

var (
	ErrNoClaimsInContext   = errors.New("no claims found in context")
	ErrNoTenantIDInClaims  = errors.New("no tenant_id found in claims")
	ErrInvalidTenantIDType = errors.New("tenant_id must be a string")
)

func GetTenantIDFromContext(c context.Context) (string, error) {
	// Public discovery handlers resolve the tenant from the property row and
	// stash it directly under TenantIDKey; staff requests carry it in claims.
	if tenantID, ok := c.Value(TenantIDKey).(string); ok && tenantID != "" {
		return tenantID, nil
	}

	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	tenantID, exists := claims[string(TenantIDKey)]
	if !exists {
		return "", ErrNoTenantIDInClaims
	}

	tenantIDStr, ok := tenantID.(string)
	if !ok {
		return "", ErrInvalidTenantIDType
	}

	return tenantIDStr, nil
}

// GetUserIDFromContext returns the authenticated staff user's id, or an empty
// string for unauthenticated (public) requests.
func GetUserIDFromContext(c context.Context) string {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return ""
	}
	if userID, ok := claims[string(UserIDKey)].(string); ok {
		return userID
	}
	return ""
}
