package middleware

import (
	"net/http"
	"strings"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/domain/customer"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/domain/staff"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie   = "access_token"
	RefreshTokenCookie  = "refresh_token"
	CustomerTokenCookie = "customer_token"

	principalKey         = "principal"
	customerPrincipalKey = "customer_principal"
)

// AuthMiddleware authenticates staff requests. The access token is read from
// the access_token cookie, falling back to a Bearer header, and the account
// is resolved from the store so revoked or deleted accounts fail immediately.
func AuthMiddleware(codec *token.Codec, accounts staff.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c, AccessTokenCookie)
		if tokenStr == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Login first to access this resource")
			c.Abort()
			return
		}

		accountID, err := codec.VerifyAccessToken(tokenStr)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		account, err := accounts.GetByID(c.Request.Context(), accountID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}

		c.Set(principalKey, account)
		c.Next()
	}
}

// CustomerAuthMiddleware authenticates customer requests using the customer
// session token.
func CustomerAuthMiddleware(codec *token.Codec, customers customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c, CustomerTokenCookie)
		if tokenStr == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Login first to access this resource")
			c.Abort()
			return
		}

		customerID, _, err := codec.VerifyCustomerToken(tokenStr)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		cust, err := customers.GetByID(c.Request.Context(), customerID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}

		c.Set(customerPrincipalKey, cust)
		c.Next()
	}
}

// Principal returns the authenticated staff account, or nil outside an
// authenticated request.
func Principal(c *gin.Context) *staff.Account {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	account, ok := v.(*staff.Account)
	if !ok {
		return nil
	}
	return account
}

// CustomerPrincipal returns the authenticated customer, or nil.
func CustomerPrincipal(c *gin.Context) *customer.Customer {
	v, exists := c.Get(customerPrincipalKey)
	if !exists {
		return nil
	}
	cust, ok := v.(*customer.Customer)
	if !ok {
		return nil
	}
	return cust
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
