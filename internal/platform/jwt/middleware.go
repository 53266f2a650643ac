package jwtmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ContextEmail  = "email"
	ContextUserID = "userID"
)

// AuthRequired returns a Gin middleware function that validates access tokens
// and restricts access to authenticated users only.
func AuthRequired(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get the token from the Authorization header, falling back to the cookie
		tokenStr := ""
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			tokenStr = strings.TrimPrefix(auth, "Bearer ")
		} else if cookie, err := c.Cookie(CookieName); err == nil {
			tokenStr = cookie
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		// 2. Verify signature, expiry and identity claims
		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			// クレーム欠落と署名不正は同じ401だがメッセージを区別する
			if errors.Is(err, ErrMissingClaims) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingClaims.Error()})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrTokenInvalid.Error()})
			}
			return
		}

		// 3. Attach the caller's identity to the request context
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextUserID, claims.UserID)

		c.Next()
	}
}
