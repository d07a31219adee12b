package middleware

import (
	"errors"
	"net/http"
	"strings"

	"curely/role"
	"curely/token"
	"curely/util"

	"github.com/gin-gonic/gin"
)

/*
* Extract the bearer credential from the Authorization header
* Missing or invalid credential -> 401 and abort
* On success set id, role and verification into the context
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New("no credential supplied")))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New("credential invalid")))
			c.Abort()
			return
		}

		claims, err := token.Parse(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, util.FailedResponse(errors.New("credential invalid")))
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("role", claims.Role)
		c.Set("verification", claims.Verification)
		c.Next()
	}
}

/*
* Runs after JWTAuth so the role is already in the context
* Wrong or missing role -> 403, a different failure class than 401
 */
func RequireRole(required role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("role")
		r, cast := v.(role.Role)
		if !ok || !cast || r != required {
			c.JSON(http.StatusForbidden, util.FailedResponse(errors.New("insufficient role")))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated account id set by JWTAuth.
func CallerID(c *gin.Context) (string, error) {
	v, ok := c.Get("id")
	id, cast := v.(string)
	if !ok || !cast || id == "" {
		return "", errors.New("invalid token: id missing")
	}
	return id, nil
}
