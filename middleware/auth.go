package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hgapps/medicare-api/util"
)

const (
	userIDContextKey   = "userID"
	usernameContextKey = "username"
	emailContextKey    = "email"
)

// ValidateLoginToken authenticates requests via the session-token header
// (or a Bearer Authorization header) and stores the caller's identity in
// the request context.
func ValidateLoginToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Missing session token",
				Err: fmt.Errorf("no session token provided"),
			})
			c.Abort()
			return
		}

		claims, err := util.ParseToken(token)
		if err != nil {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid or expired session token",
				Err: err,
			})
			c.Abort()
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Set(usernameContextKey, claims.Username)
		c.Set(emailContextKey, claims.Email)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := c.GetHeader("session-token"); token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// GetUserID retrieves the authenticated user's ID from the request context.
func GetUserID(c *gin.Context) (string, error) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return "", fmt.Errorf("user ID not found in context")
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", fmt.Errorf("invalid user ID in context")
	}
	return id, nil
}

// GetUserEmail retrieves the authenticated user's email from the request
// context.
func GetUserEmail(c *gin.Context) (string, error) {
	value, exists := c.Get(emailContextKey)
	if !exists {
		return "", fmt.Errorf("email not found in context")
	}
	email, ok := value.(string)
	if !ok || email == "" {
		return "", fmt.Errorf("invalid email in context")
	}
	return email, nil
}
