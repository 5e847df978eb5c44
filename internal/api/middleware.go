package api

import (
	"net/http"
	"strings"

	"resto-pricer/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthRequired. The company ID is the tenant every
// downstream query is scoped to; handlers read it instead of any global
// session state.
const (
	ctxUserID    = "user_id"
	ctxCompanyID = "company_id"
	ctxRole      = "role"
)

// AuthRequired validates the bearer token and stores the authenticated
// identity on the request context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxCompanyID, claims.CompanyID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// AdminOnly gates destructive routes.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

func companyID(c *gin.Context) uint {
	if v, ok := c.Get(ctxCompanyID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func userID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
